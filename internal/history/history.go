package history

import (
	"bufio"
	"sync"

	"github.com/spf13/afero"
)

const maxItems = 1000

// History records the lines the user has entered, bounded to the most
// recent maxItems. It is backed by an afero filesystem so tests can run
// against memory.
type History struct {
	fs    afero.Fs
	file  string
	items []string
	mu    sync.Mutex
}

func New(fs afero.Fs, file string) (*History, error) {
	h := &History{fs: fs, file: file}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) Add(item string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, item)
	if len(h.items) > maxItems {
		h.items = h.items[len(h.items)-maxItems:]
	}
	h.save()
}

func (h *History) GetAll() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string{}, h.items...)
}

func (h *History) load() error {
	file, err := h.fs.Open(h.file)
	if err != nil {
		// No history yet.
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.items = append(h.items, scanner.Text())
	}
	if len(h.items) > maxItems {
		h.items = h.items[len(h.items)-maxItems:]
	}
	return scanner.Err()
}

func (h *History) save() error {
	file, err := h.fs.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range h.items {
		if _, err := writer.WriteString(item + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

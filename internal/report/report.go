package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// Reporter receives sweep progress in processing order.
type Reporter interface {
	Directory(dir string)
	NoDuplicates(dir string)
	SetHeader(original string, commit bool)
	File(path string, commit bool)
	Missing(path string)
}

// Console writes the report as indented plain text.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, colorize: shouldColorize(out)}
}

func (c *Console) Directory(dir string) {
	c.printf("Checking: %s\n", dir)
}

func (c *Console) NoDuplicates(string) {
	c.printf("\tNo duplicates found\n")
}

func (c *Console) SetHeader(_ string, commit bool) {
	if commit {
		c.printf("\tRemoving:\n")
		return
	}
	c.printf("\tWould remove:\n")
}

func (c *Console) File(path string, _ bool) {
	c.printf("\t\t%s\n", path)
}

func (c *Console) Missing(path string) {
	line := fmt.Sprintf("[!] Couldn't find duplicate file: %s", path)
	if c.colorize {
		line = ansiYellow + line + ansiReset
	}
	c.printf("\t\t%s\n", line)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Discard is a Reporter that drops everything.
type Discard struct{}

func (Discard) Directory(string) {}
func (Discard) NoDuplicates(string) {}
func (Discard) SetHeader(string, bool) {}
func (Discard) File(string, bool) {}
func (Discard) Missing(string) {}

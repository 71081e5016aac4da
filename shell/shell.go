package shell

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/napalmtorch/slugalloc/internal/logger"
	"github.com/napalmtorch/slugalloc/region/alloc"
)

// Options configures a Shell.
type Options struct {
	Console Console      // Required
	Logger  *slog.Logger // Records each command at debug level. Nil disables
}

// Shell maps text commands onto allocator operations.
type Shell struct {
	a   *alloc.Allocator
	con Console
	log *slog.Logger
}

// New returns a shell driving a.
func New(a *alloc.Allocator, opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Shell{a: a, con: opts.Console, log: log}
}

// Run reads one command per line from r until EOF, reporting failures
// through the console. It returns only the reader's error, nil at EOF.
func (s *Shell) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for {
		s.con.Prompt()
		if !sc.Scan() {
			return sc.Err()
		}
		if err := s.Exec(sc.Text()); err != nil {
			s.con.Error(err.Error())
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return ErrUnknownCommand
	}
	s.log.Debug("command", "name", args[0], "args", args[1:])

	switch strings.ToUpper(args[0]) {
	case "CLS":
		s.con.Clear()
		return nil
	case "ALLOC":
		return s.alloc(args[1:])
	case "FREE":
		return s.free(args[1:])
	default:
		return ErrUnknownCommand
	}
}

func (s *Shell) alloc(args []string) error {
	if len(args) != 1 {
		return ErrInvalidArguments
	}
	size, err := parseUint32(args[0])
	if err != nil {
		return ErrInvalidSize
	}
	// The handle is not retained; the allocator logs the outcome.
	if _, err := s.a.Allocate(size, false, ""); err != nil {
		s.log.Debug("allocate failed", "size", size, "err", err)
	}
	return nil
}

func (s *Shell) free(args []string) error {
	if len(args) != 1 {
		return ErrInvalidArguments
	}
	off, err := parseUint32(args[0])
	if err != nil {
		return ErrInvalidOffset
	}
	for _, c := range s.a.Chunks() {
		if c.Offset() == off {
			return s.a.Free(c)
		}
	}
	return ErrChunkNotFound
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

package main

import (
	bplus "BPlusIndex/bplustree"
	lookupcache "BPlusIndex/lookup_cache"
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

func main() {
	order := flag.Int("order", bplus.DefaultOrder, "maximum keys per node")
	cacheSize := flag.Int64("cache", lookupcache.DefaultConfig().MaxCost, "lookup cache capacity in entries")
	debug := flag.Bool("debug", false, "log structural tree events")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()

	cfg := lookupcache.DefaultConfig()
	cfg.MaxCost = *cacheSize
	cfg.NumCounters = *cacheSize * 10
	index, err := lookupcache.New[int, string](bplus.Config{Order: *order}, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer index.Close()

	repl(os.Stdin, os.Stdout, index)
}

// repl reads one command per line until EOF or `exit`.
func repl(in io.Reader, out io.Writer, index *lookupcache.CachedTree[int, string]) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "idx> ")

		if !scanner.Scan() { // Ctrl+D pressed
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			break
		}
		if line == "" {
			continue
		}

		if err := execute(out, index, strings.Fields(line)); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func execute(out io.Writer, index *lookupcache.CachedTree[int, string], args []string) error {
	tree := index.Tree()
	cmd := strings.ToLower(args[0])

	switch cmd {
	case "insert":
		if len(args) < 3 {
			return fmt.Errorf("usage: insert <key> <value>")
		}
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad key %q: %w", args[1], err)
		}
		val := strings.Join(args[2:], " ")
		if index.Insert(k, val) {
			fmt.Fprintf(out, "inserted %d\n", k)
		} else {
			fmt.Fprintf(out, "updated %d\n", k)
		}

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get <key>")
		}
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad key %q: %w", args[1], err)
		}
		if v, ok := index.Search(k); ok {
			fmt.Fprintf(out, "%d --> %s\n", k, v)
		} else {
			fmt.Fprintf(out, "%d not found\n", k)
		}

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: delete <key>")
		}
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad key %q: %w", args[1], err)
		}
		if index.Delete(k) {
			fmt.Fprintf(out, "deleted %d\n", k)
		} else {
			fmt.Fprintf(out, "%d not found\n", k)
		}

	case "range":
		if len(args) != 3 {
			return fmt.Errorf("usage: range <start> <end>")
		}
		start, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad start %q: %w", args[1], err)
		}
		end, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad end %q: %w", args[2], err)
		}
		entries := index.Range(start, end)
		for _, e := range entries {
			fmt.Fprintf(out, "%d --> %s\n", e.Key, e.Value)
		}
		fmt.Fprintf(out, "(%s rows)\n", humanize.Comma(int64(len(entries))))

	case "min", "max":
		var k int
		var ok bool
		if cmd == "min" {
			k, ok = tree.Min()
		} else {
			k, ok = tree.Max()
		}
		if !ok {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		fmt.Fprintln(out, k)

	case "stats":
		s := tree.Stats()
		fmt.Fprintf(out, "order=%d height=%d size=%s leaves=%s internal=%s free=%s\n",
			s.Order, s.Height,
			humanize.Comma(int64(s.Size)),
			humanize.Comma(int64(s.LeafNodes)),
			humanize.Comma(int64(s.InternalNodes)),
			humanize.Comma(int64(s.FreeSlots)))
		fmt.Fprintf(out, "cache hits=%s misses=%s\n",
			humanize.Comma(int64(index.Hits())),
			humanize.Comma(int64(index.Misses())))

	case "validate":
		if err := tree.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

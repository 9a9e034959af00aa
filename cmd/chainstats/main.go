// Command chainstats counts the words of its input in a ChainTable and reports how the table spread them.
//
//	chainstats [-top n] [-dump] [-env file] [file ...]
//
// With no files it reads stdin. CHAINSTATS_TOP sets the default for -top and may come from the -env file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/g-m-twostay/chaintable/Maps/ChainTable"
	"github.com/joho/godotenv"
)

type config struct {
	top  int
	dump bool
}

type count struct {
	word string
	n    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("chainstats: ")

	envFile := flag.String("env", ".env", "dotenv file with defaults")
	top := flag.Int("top", -1, "number of most frequent words to print (default $CHAINSTATS_TOP or 10)")
	dump := flag.Bool("dump", false, "print every bucket of the table")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("ignoring %s: %v", *envFile, err)
	}
	cfg := config{top: *top, dump: *dump}
	if cfg.top < 0 {
		cfg.top = envInt("CHAINSTATS_TOP", 10)
	}

	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func envInt(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Printf("%s=%q isn't a non-negative integer, using %d", key, s, def)
		return def
	}
	return n
}

func run(cfg config, files []string, w io.Writer) error {
	words := ChainTable.New[string, int](nil)
	if len(files) == 0 {
		if err := countWords(words, os.Stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = countWords(words, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	report(words, cfg, w)
	return nil
}

func countWords(words *ChainTable.ChainTable[string, int], r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, _ := words.Find(sc.Text())
		words.Insert(sc.Text(), n+1)
	}
	return sc.Err()
}

// topWords returns the n most frequent words, ties broken alphabetically.
func topWords(words *ChainTable.ChainTable[string, int], n int) []count {
	h := binaryheap.NewWith(func(a, b interface{}) int {
		x, y := a.(count), b.(count)
		switch {
		case x.n != y.n:
			return y.n - x.n
		case x.word < y.word:
			return -1
		case x.word > y.word:
			return 1
		}
		return 0
	})
	words.Range(func(w string, c int) bool {
		h.Push(count{w, c})
		return true
	})
	out := make([]count, 0, min(n, h.Size()))
	for len(out) < n {
		v, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, v.(count))
	}
	return out
}

func report(words *ChainTable.ChainTable[string, int], cfg config, w io.Writer) {
	s := words.Stats()
	fmt.Fprintf(w, "words: %d distinct\n", s.Size)
	fmt.Fprintf(w, "buckets: %d (%d used), longest chain %d, load %.2f\n", s.Capacity, s.UsedBuckets, s.LongestChain, s.LoadFactor)
	for _, c := range topWords(words, cfg.top) {
		fmt.Fprintf(w, "%8d %s\n", c.n, c.word)
	}
	if cfg.dump {
		fmt.Fprintln(w, words)
	}
}

// Command mnemonicshares splits a BIP-0039 mnemonic seed phrase into N
// share phrases of which any T reconstruct the original, and reverses
// that split given T or more shares.
//
// Do not use for real funds or important secrets!
package main

import (
	"bufio"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"shamir39.dev/mnemonic"
	"shamir39.dev/shares"
	"shamir39.dev/wordlist"
)

var (
	createFlags = flag.NewFlagSet("create", flag.ExitOnError)
	createN     = createFlags.Int("n", 0, "total number of shares")
	createT     = createFlags.Int("t", 0, "threshold number of shares required to reconstruct")
	createFile  = createFlags.String("f", "", "path to a file holding the seed phrase")
	createStdin = createFlags.Bool("i", false, "read the seed phrase from stdin (default if -f is omitted)")
	createNoEmb = createFlags.Bool("N", false, "disable index embedding; emit 'index: words' lines instead")

	reconstructFlags = flag.NewFlagSet("reconstruct", flag.ExitOnError)
	reconstructFile  = reconstructFlags.String("f", "", "path to a file holding the share lines")
	reconstructStdin = reconstructFlags.Bool("i", false, "read the share lines from stdin (default if -f is omitted)")

	verbose      bool
	wordlistPath string

	// logger is silenced unless -v is given; the engine packages never
	// log themselves (they are pure functions), so all diagnostic
	// output originates here.
	logger = log.New(io.Discard, "", 0)
)

func main() {
	args := os.Args[1:]
	global := flag.NewFlagSet("mnemonicshares", flag.ExitOnError)
	global.BoolVar(&verbose, "v", false, "verbose logging")
	global.StringVar(&wordlistPath, "w", "", "path to an alternate word list (default: the embedded English list)")
	// Parse only the global flags that appear before the subcommand.
	split := len(args)
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "-w" || a == "--w" {
			i++ // skip the flag's value
			continue
		}
		if a != "" && a[0] != '-' {
			split = i
			break
		}
	}
	if err := global.Parse(args[:split]); err != nil {
		fmt.Fprintf(os.Stderr, "mnemonicshares: %v\n", err)
		os.Exit(2)
	}
	if verbose {
		logger.SetOutput(os.Stderr)
		logger.SetPrefix("mnemonicshares: ")
	}

	if err := run(os.Stdout, os.Stdin, args[split:]); err != nil {
		fmt.Fprintf(os.Stderr, "mnemonicshares: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout io.Writer, stdin io.Reader, args []string) error {
	if len(args) == 0 {
		return errors.New("missing command (create, reconstruct)")
	}
	cmd := args[0]
	args = args[1:]

	wl, err := loadWordList()
	if err != nil {
		return err
	}

	switch cmd {
	case "create":
		createFlags.VisitAll(func(f *flag.Flag) { f.Value.Set(f.DefValue) })
		if err := createFlags.Parse(args); err != nil {
			createFlags.Usage()
			return err
		}
		return create(stdout, stdin, wl)
	case "reconstruct":
		reconstructFlags.VisitAll(func(f *flag.Flag) { f.Value.Set(f.DefValue) })
		if err := reconstructFlags.Parse(args); err != nil {
			reconstructFlags.Usage()
			return err
		}
		return reconstruct(stdout, stdin, wl)
	default:
		return fmt.Errorf("unknown command: %q", cmd)
	}
}

func loadWordList() (*wordlist.List, error) {
	if wordlistPath == "" {
		return wordlist.English()
	}
	f, err := os.Open(wordlistPath)
	if err != nil {
		return nil, fmt.Errorf("word list: %w", err)
	}
	defer f.Close()
	return wordlist.Load(f)
}

func create(stdout io.Writer, stdin io.Reader, wl *wordlist.List) error {
	if *createN <= 0 || *createT <= 0 {
		return errors.New("create: -n and -t are required and must be positive")
	}
	if *createFile != "" && *createStdin {
		return errors.New("create: -f and -i are mutually exclusive")
	}
	phrase, err := readInput(stdin, *createFile)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	words := mnemonic.Normalize(string(phrase))

	logger.Printf("splitting a %d-word mnemonic into %d shares (threshold %d, embed=%v)", len(words), *createN, *createT, !*createNoEmb)
	out, err := shares.Split(shares.SplitConfig{
		Words:    words,
		N:        *createN,
		T:        *createT,
		Embed:    !*createNoEmb,
		WordList: wl,
		Rand:     rand.Reader,
	})
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	for _, sh := range out {
		if *createNoEmb {
			fmt.Fprintln(stdout, shares.FormatShareLine(sh))
		} else {
			fmt.Fprintln(stdout, mnemonic.Join(sh.Words))
		}
	}
	return nil
}

func reconstruct(stdout io.Writer, stdin io.Reader, wl *wordlist.List) error {
	if *reconstructFile != "" && *reconstructStdin {
		return errors.New("reconstruct: -f and -i are mutually exclusive")
	}
	data, err := readInput(stdin, *reconstructFile)
	if err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}

	var in []shares.InputShare
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sh, err := parseInputLine(line, wl)
		if err != nil {
			return fmt.Errorf("reconstruct: %w", err)
		}
		in = append(in, sh)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}

	logger.Printf("reconstructing from %d supplied shares", len(in))
	words, err := shares.Combine(in, wl)
	if err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}
	fmt.Fprintln(stdout, mnemonic.Join(words))
	return nil
}

// parseInputLine accepts either an "index: words" no-embedding share
// line or a bare W-word mnemonic whose share index is embedded in its
// last word.
func parseInputLine(line string, wl *wordlist.List) (shares.InputShare, error) {
	if strings.Contains(line, ":") {
		sh, err := shares.ParseShareLine(line)
		if err == nil {
			return sh, nil
		}
	}
	words := mnemonic.Normalize(line)
	idx, err := shares.ExtractIndex(words, wl)
	if err != nil {
		return shares.InputShare{}, fmt.Errorf("%q: %w", line, err)
	}
	return shares.InputShare{Index: idx + 1, Words: words}, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

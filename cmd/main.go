// toolkit - command-line front end for the toolkit packages
//
// Usage:
//
//	toolkit wide <text>                 Print the UTF-16 units of ASCII text
//	toolkit narrow <unit>...            Print the text for decimal or 0x UTF-16 units
//	toolkit charset <name> <text>       Encode text into a named charset, as hex
//	toolkit range <n> | <start> <stop>  Print an integer range
//	toolkit contains <value> <item>...  Report whether value is among the items
//	toolkit retry <failures> <attempts> Retry an operation that fails <failures> times
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	"unicode/utf16"

	"github.com/baxromumarov/toolkit"
	"github.com/baxromumarov/toolkit/charset"
	"github.com/baxromumarov/toolkit/codepoint"
	"github.com/baxromumarov/toolkit/seq"
	"github.com/baxromumarov/toolkit/textconv"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("toolkit: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "wide":
		err = cmdWide(args)
	case "narrow":
		err = cmdNarrow(args)
	case "charset":
		err = cmdCharset(args)
	case "range":
		err = cmdRange(args)
	case "contains":
		err = cmdContains(args)
	case "retry":
		err = cmdRetry(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		log.Printf("unknown command %q", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: toolkit <command> [args]

commands:
  wide <text>                 print the UTF-16 units of ASCII text
  narrow <unit>...            print the text for UTF-16 units
  charset <name> <text>       encode text into a named charset
  range <n> | <start> <stop>  print an integer range
  contains <value> <item>...  report whether value is among the items
  retry <failures> <attempts> retry an operation that fails <failures> times`)
}

func cmdWide(args []string) error {
	if len(args) != 1 {
		return errors.New("wide: expected one argument")
	}

	w, err := textconv.ToWide(textconv.Str(args[0]))
	if errors.Is(err, codepoint.ErrEncodingRange) {
		return fmt.Errorf("wide: %w (try: toolkit charset UTF-8 %q)", err, args[0])
	}
	if err != nil {
		return err
	}
	fmt.Println(w)
	return nil
}

func cmdNarrow(args []string) error {
	units := make(textconv.WStr, 0, len(args))
	for _, a := range args {
		u, err := strconv.ParseUint(a, 0, 16)
		if err != nil {
			return fmt.Errorf("narrow: bad unit %q: %w", a, err)
		}
		units = append(units, uint16(u))
	}

	s, err := textconv.ToNarrow(units)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func cmdCharset(args []string) error {
	if len(args) != 2 {
		return errors.New("charset: expected <name> <text>")
	}

	cs, err := charset.Lookup(args[0])
	if err != nil {
		return err
	}

	b, err := cs.Encode(utf16.Encode([]rune(args[1])))
	if err != nil {
		return err
	}
	fmt.Printf("%s: % x\n", cs.Name(), b)
	return nil
}

func cmdRange(args []string) error {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("range: %w", err)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		fmt.Println(seq.Range(nums[0]))
	case 2:
		fmt.Println(seq.Between(nums[0], nums[1]))
	default:
		return errors.New("range: expected <n> or <start> <stop>")
	}
	return nil
}

func cmdContains(args []string) error {
	if len(args) < 1 {
		return errors.New("contains: expected <value> <item>...")
	}
	fmt.Println(seq.Contains(args[1:], args[0]))
	return nil
}

func cmdRetry(args []string) error {
	if len(args) != 2 {
		return errors.New("retry: expected <failures> <attempts>")
	}
	failures, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	attempts, err := strconv.Atoi(args[1])
	if err != nil || attempts < 1 {
		return fmt.Errorf("retry: attempts must be a positive integer, got %q", args[1])
	}

	calls := 0
	start := time.Now()
	v, err := toolkit.Retry(func() (int, error) {
		calls++
		if calls <= failures {
			return 0, fmt.Errorf("simulated failure %d", calls)
		}
		return calls, nil
	}, attempts, 50*time.Millisecond, toolkit.WithOnRetry(func(info toolkit.AttemptInfo) {
		log.Printf("attempt %d/%d failed: %v; retrying in %v",
			info.Attempt, info.MaxAttempts, info.Err, info.Delay)
	}))
	if err != nil {
		return fmt.Errorf("retry: gave up after %d attempts: %w", calls, err)
	}

	fmt.Printf("succeeded on attempt %d after %v\n", v, time.Since(start).Round(time.Millisecond))
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/deanrtaylor1/partsdiscovery/cli"
	"github.com/deanrtaylor1/partsdiscovery/corpus"
	"github.com/deanrtaylor1/partsdiscovery/logger"
	"github.com/deanrtaylor1/partsdiscovery/tfidf"
	"github.com/deanrtaylor1/partsdiscovery/util"
)

func help() {
	fmt.Println("PartsDiscovery - exposes key words from part catalogs")
	fmt.Println("Author: Dean Taylor")
	fmt.Println("Version: 0.1")
	fmt.Println("License: MIT")

	fmt.Println("CLI Usage: PROGRAM [SUBCOMMAND] [OPTIONS]")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            interactive catalog discovery")
	fmt.Println("    discover <dir> [OPTIONS]:       print keywords of every catalog in dir")
	fmt.Println("        -k <n>                      keywords per catalog (default 10)")
	fmt.Println("        -stop <w1,w2>               stop words removed before scoring")
	fmt.Println("        -lang <language>            snowball stemmer language, \"none\" disables stemming")
	fmt.Println("        -json                       print results as json")
	fmt.Println("    help:                           list all commands")
}

type discoverArgs struct {
	dir  string
	lang string
	json bool
	opts corpus.Options
}

func parseDiscoverArgs(args []string) (discoverArgs, error) {
	parsed := discoverArgs{}
	var stop string

	fs := flag.NewFlagSet("discover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&parsed.opts.TopK, "k", tfidf.DefaultTopK, "keywords per catalog")
	fs.StringVar(&stop, "stop", "", "comma separated stop words")
	fs.StringVar(&parsed.lang, "lang", cli.DefaultLanguage, "snowball stemmer language")
	fs.BoolVar(&parsed.json, "json", false, "print results as json")

	// flag stops at the first positional argument, so options may follow the directory
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return parsed, err
		}
		if fs.NArg() == 0 {
			break
		}
		if parsed.dir != "" {
			return parsed, fmt.Errorf("unexpected argument %q", fs.Arg(0))
		}
		parsed.dir = fs.Arg(0)
		rest = fs.Args()[1:]
	}

	if parsed.dir == "" {
		return parsed, fmt.Errorf("missing catalog directory")
	}
	if parsed.opts.TopK < 1 {
		return parsed, fmt.Errorf("invalid value for -k: %d", parsed.opts.TopK)
	}
	if parsed.lang == "none" {
		parsed.lang = ""
	}

	stopWords, err := cli.ParseStopWords(stop, parsed.lang)
	if err != nil {
		return parsed, err
	}
	parsed.opts.StopWords = stopWords
	return parsed, nil
}

func discover(args []string) error {
	parsed, err := parseDiscoverArgs(args)
	if err != nil {
		return err
	}

	model, results, err := cli.RunDiscovery(parsed.dir, parsed.lang, parsed.opts)
	if err != nil {
		return err
	}

	if parsed.json {
		out, err := util.ToJSON(results)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	cli.PrintResults(os.Stdout, model, results)
	return nil
}

func main() {
	args := os.Args[1:]
	if len(args) < 1 {
		help()
		os.Exit(1)
	}
	program := args[0]

	switch program {
	case "cli":
		if err := cli.InitialPrompt(); err != nil {
			log.Fatal(err)
		}

	case "discover":
		if err := discover(args[1:]); err != nil {
			logger.HandleError(err)
			os.Exit(1)
		}

	case "help", "-help":
		help()

	default:
		help()
		os.Exit(1)
	}

}

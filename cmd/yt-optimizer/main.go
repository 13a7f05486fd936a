// Command yt-optimizer prints title, keyword and thumbnail suggestions for a
// topic without starting the desktop interface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ytget/yt-optimizer/internal/analyze"
	"github.com/ytget/yt-optimizer/internal/config"
	"github.com/ytget/yt-optimizer/internal/model"
	"github.com/ytget/yt-optimizer/internal/platform"
	"github.com/ytget/yt-optimizer/internal/youtube"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	noSuggestionsText = "No suggestions found"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yt-optimizer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	topic := fs.String("topic", "", "video topic or playlist URL to analyze")
	maxResults := fs.Int("max", youtube.DefaultMaxResults, "number of videos to fetch (1-50)")
	envFile := fs.String("env", "", "optional .env file with YOUTUBE_API_KEY")
	timeout := fs.Duration("timeout", time.Minute, "overall timeout")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if strings.TrimSpace(*topic) == "" {
		fmt.Fprintln(stderr, "Please enter a topic.")
		fmt.Fprintln(stderr, "usage: yt-optimizer -topic \"your topic\" [-max 20]")
		return exitUsage
	}

	var env config.Env
	if *envFile != "" {
		var err error
		if env, err = config.LoadEnvFile(*envFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	} else {
		env = config.LoadEnv()
	}

	client := youtube.NewClient(youtube.Config{APIKey: env.APIKey, BaseURL: env.BaseURL})
	service := analyze.NewService(client, platform.NewPlaylistResolver(), *maxResults)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := service.Run(ctx, *topic)
	if err != nil {
		var se *youtube.SearchError
		if errors.As(err, &se) && se.IsInvalidKey() {
			fmt.Fprintf(stderr, "%v\nset %s in the environment or a .env file\n", err, config.EnvAPIKey)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return exitError
	}

	printResult(stdout, result)
	return exitOK
}

func printResult(w io.Writer, result model.SuggestionResult) {
	if result.IsEmpty() {
		fmt.Fprintln(w, noSuggestionsText)
		return
	}

	fmt.Fprintln(w, "Title suggestions:")
	for i, s := range result.TitleSuggestions {
		fmt.Fprintf(w, "%2d. %s (%s views, %s)\n", i+1, s.Title, s.ViewCount.Display("en"), s.ChannelTitle)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keyword suggestions:")
	if len(result.KeywordSuggestions) == 0 {
		fmt.Fprintln(w, "  -")
	} else {
		fmt.Fprintf(w, "  %s\n", strings.Join(result.KeywordSuggestions, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Thumbnails:")
	for _, u := range result.ThumbnailURLs {
		fmt.Fprintf(w, "  %s\n", u)
	}
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd sends the rendered dashboard to Gemini and prints its commentary.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "AI commentary on the portfolio dashboard" }
func (*assistCmd) Usage() string {
	return `fv assist [-model <model>] [question]

  Values the portfolio, sends the dashboard to Gemini and prints the reply.
  Without a question it asks for a general review. Requires a Gemini API key
  in the environment (GEMINI_API_KEY).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

const assistInstruction = `You are a portfolio accountant. You are given a
markdown dashboard of open and closed stock positions valued in EUR. Comment
on it factually: concentrations, unusual realized losses, cells marked n/a.
You never give investment advice.`

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := BuildReport()
	if err != nil {
		return fail(err)
	}
	dashboard := renderer.DashboardMarkdown(report)

	question := "Review this portfolio."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	resp, err := chat.Send(ctx,
		&genai.Part{Text: dashboard},
		&genai.Part{Text: question},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty response from Gemini")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}

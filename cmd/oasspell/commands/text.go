package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/internal/httputil"
	"github.com/erraggy/oasspell/suggest"
	"github.com/erraggy/oasspell/textindex"
	"github.com/erraggy/oasspell/tokenize"
	"golang.org/x/text/language"
)

// textArg joins the positional arguments, or reads stdin when the only
// argument is "-".
func textArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 1 && fs.Arg(0) == StdinFilePath {
		data, err := httputil.ReadLimited(stdin, textindex.DefaultMaxSize, "text_size")
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
	return strings.Join(fs.Args(), " "), nil
}

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	Words  bool
	Format string
}

// tokenRow is one token in structured output.
type tokenRow struct {
	Text      string `json:"text" yaml:"text"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
	Delimiter bool   `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &TokenizeFlags{}

	fs.BoolVar(&flags.Words, "words", false, "print words only, without delimiters")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		out := fs.Output()
		Writef(out, "Usage: oasspell tokenize [flags] <text|->\n\n")
		Writef(out, "Split an identifier or text into tokens the way the checker does.\n\n")
		Writef(out, "Flags:\n")
		fs.PrintDefaults()
		Writef(out, "\nExamples:\n")
		Writef(out, "  oasspell tokenize HTTPSProxyURL\n")
		Writef(out, "  oasspell tokenize --words user_id@example\n")
	}
	return fs, flags
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("tokenize command requires text or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	text, err := textArg(fs)
	if err != nil {
		return err
	}

	tokens := tokenize.Split(text)
	if flags.Words {
		tokens = tokenize.Words(text)
	}
	if flags.Format != FormatText {
		rows := make([]tokenRow, len(tokens))
		for i, t := range tokens {
			rows[i] = tokenRow{Text: t.Text, Start: t.Start, End: t.End, Delimiter: t.Delimiter}
		}
		return OutputStructured(rows, flags.Format, "")
	}
	for _, t := range tokens {
		Writef(stdout, "%q\n", t.Text)
	}
	return nil
}

// AnnotateFlags contains flags for the annotate command
type AnnotateFlags struct {
	MaxDepth int
	Format   string
}

// SetupAnnotateFlags creates and configures a FlagSet for the annotate command.
func SetupAnnotateFlags() (*flag.FlagSet, *AnnotateFlags) {
	fs := flag.NewFlagSet("annotate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &AnnotateFlags{}

	fs.IntVar(&flags.MaxDepth, "max-depth", annotate.DefaultMaxDepth, "nesting depth after which tags are kept as markup")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		out := fs.Output()
		Writef(out, "Usage: oasspell annotate [flags] <text|->\n\n")
		Writef(out, "Split documentation into text and markup segments the way the checker does.\n\n")
		Writef(out, "Flags:\n")
		fs.PrintDefaults()
		Writef(out, "\nExamples:\n")
		Writef(out, "  oasspell annotate '<p>Use <code>petId</code> to look up a pet.</p>'\n")
		Writef(out, "  oasspell annotate --format json - < description.html\n")
	}
	return fs, flags
}

// HandleAnnotate executes the annotate command
func HandleAnnotate(args []string) error {
	fs, flags := SetupAnnotateFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("annotate command requires text or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	text, err := textArg(fs)
	if err != nil {
		return err
	}

	segs, err := annotate.New(annotate.WithMaxDepth(flags.MaxDepth)).Annotate(text)
	if err != nil {
		return err
	}
	if flags.Format != FormatText {
		return OutputStructured(segs, flags.Format, "")
	}
	for _, seg := range segs {
		Writef(stdout, "%-6s %q\n", seg.Kind, seg.Content)
	}
	Writef(stdout, "\ncheckable: %q\n", segs.Checkable())
	return nil
}

// SuggestFlags contains flags for the suggest command
type SuggestFlags struct {
	Start    int
	End      int
	Limit    int
	Language string
	Format   string
}

// SetupSuggestFlags creates and configures a FlagSet for the suggest command.
func SetupSuggestFlags() (*flag.FlagSet, *SuggestFlags) {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &SuggestFlags{}

	fs.IntVar(&flags.Start, "start", 0, "byte offset where the misspelled span starts")
	fs.IntVar(&flags.End, "end", -1, "byte offset where the misspelled span ends (default: end of text)")
	fs.IntVar(&flags.Limit, "limit", suggest.DefaultLimit, "maximum number of suggestions")
	fs.StringVar(&flags.Language, "language", "en", "language tag for capitalization rules")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		out := fs.Output()
		Writef(out, "Usage: oasspell suggest [flags] <text> <candidate>...\n\n")
		Writef(out, "Build corrected versions of text by replacing the span [start, end) with each candidate.\n\n")
		Writef(out, "Flags:\n")
		fs.PrintDefaults()
		Writef(out, "\nExamples:\n")
		Writef(out, "  oasspell suggest Recieve receive\n")
		Writef(out, "  oasspell suggest --start 5 --end 9 user_naem name names\n")
	}
	return fs, flags
}

// HandleSuggest executes the suggest command
func HandleSuggest(args []string) error {
	fs, flags := SetupSuggestFlags()
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("suggest command requires text and at least one candidate")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	tag, err := language.Parse(flags.Language)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", flags.Language, err)
	}
	f, err := suggest.New(suggest.WithLimit(flags.Limit), suggest.WithLanguage(tag))
	if err != nil {
		return err
	}

	text := fs.Arg(0)
	end := flags.End
	if end < 0 {
		end = len(text)
	}
	suggestions, err := f.Format(text, flags.Start, end, fs.Args()[1:])
	if err != nil {
		return err
	}
	if flags.Format != FormatText {
		return OutputStructured(suggestions, flags.Format, "")
	}
	for _, s := range suggestions {
		Writef(stdout, "%s\n", s)
	}
	return nil
}

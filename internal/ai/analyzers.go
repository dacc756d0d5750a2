// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ai

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"galley-scan/internal/report"
)

// Supplement status markers. These are structural: formatters render them
// verbatim and the report never maps them onto finding severities.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Input is everything the advisory checks may look at. ManuscriptText is
// optional; checks that need it skip themselves when it is absent or too
// short to be meaningful.
type Input struct {
	Title                    string
	Subtitle                 string
	Description              string
	Language                 string
	Keywords                 []string
	IsTranslation            bool
	IsPublicDomain           bool
	DifferentiationStatement string
	ManuscriptText           string
}

// Analyzer runs the advisory check set against a chat-completion model.
type Analyzer struct {
	client      Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	concurrency int
	rng         *rand.Rand
}

// Options tunes an Analyzer. Zero values fall back to defaults.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	Concurrency int

	// Seed fixes the sentence-sampling order. Zero means time-seeded.
	Seed int64
}

const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 1200
	defaultTemperature = 0.3
	defaultTimeout     = 60 * time.Second
	defaultConcurrency = 3
)

// NewAnalyzer builds an Analyzer over the given client.
func NewAnalyzer(client Client, opts Options) *Analyzer {
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Analyzer{
		client:      client,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

type check struct {
	name string
	run  func(ctx context.Context, in Input) (string, error)
}

// errSkip wraps a reason why a check does not apply to this input.
type errSkip struct{ reason string }

func (e errSkip) Error() string { return e.reason }

func skip(format string, args ...any) error {
	return errSkip{reason: fmt.Sprintf(format, args...)}
}

// Run executes every check with bounded concurrency and a per-check timeout.
// The returned supplements are in fixed check order regardless of completion
// order. A check that fails or skips reports that in its status; Run itself
// never fails.
func (a *Analyzer) Run(ctx context.Context, in Input) []report.Supplement {
	checks := a.checks(in)
	results := make([]report.Supplement, len(checks))

	sem := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup
	for i, c := range checks {
		wg.Add(1)
		go func(i int, c check) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			checkCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			text, err := c.run(checkCtx, in)
			switch {
			case err == nil:
				results[i] = report.Supplement{Check: c.name, Status: StatusOK, Text: text}
			case isSkip(err):
				results[i] = report.Supplement{Check: c.name, Status: StatusSkipped, Text: err.Error()}
			default:
				log.Warn().Err(err).Str("check", c.name).Msg("advisory check failed")
				results[i] = report.Supplement{Check: c.name, Status: StatusFailed, Text: err.Error()}
			}
		}(i, c)
	}
	wg.Wait()
	return results
}

func isSkip(err error) bool {
	_, ok := err.(errSkip)
	return ok
}

func (a *Analyzer) checks(in Input) []check {
	list := []check{
		{"Infringing content", a.checkInfringingContent},
		{"Misleading description", a.checkMisleadingDescription},
		{"Freely available content", a.checkFreelyAvailableContent},
		{"Typos, placeholders & accessibility", a.checkTyposPlaceholders},
		{"General manuscript quality", a.checkGeneralQuality},
		{"Links in manuscript", a.checkLinks},
		{"Duplicated text", a.checkDuplicatedText},
		{"Disappointing content", a.checkDisappointingContent},
		{"Language consistency", a.checkLanguageConsistency},
	}
	if in.IsPublicDomain {
		list = append(list, check{"Public domain differentiation", a.checkPublicDomainStatement})
	}
	return list
}

// invoke sends one prompt and returns the first text choice.
func (a *Analyzer) invoke(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		MaxTokens:   maxTokens,
		Temperature: a.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("model returned empty feedback")
	}
	return text, nil
}

func (a *Analyzer) checkInfringingContent(ctx context.Context, in Input) (string, error) {
	if in.Title == "" && in.Description == "" {
		return "", skip("title and description needed for the infringing-content check")
	}
	prompt := fmt.Sprintf(`You are a publishing content policy assistant. Review these book details:
Title: %s
Subtitle: %s
Keywords: %s
Description snippet: %s

Does this content strongly suggest it might be a summary, study guide, analysis, or unauthorized companion book to another well-known copyrighted work? Keywords naming another author's work or characters are a strong signal.
If yes, provide actionable feedback as bullet points: state that it *might* be a companion/summary and briefly why, and strongly advise the author to ensure they possess all necessary publishing rights and permissions to avoid infringing on copyright.
If no, state: "Content does not immediately raise concerns as an infringing companion book/summary based on provided text."`,
		in.Title, in.Subtitle, strings.Join(in.Keywords, ", "), firstN(in.Description, 300))
	return a.invoke(ctx, prompt, 350)
}

func (a *Analyzer) checkMisleadingDescription(ctx context.Context, in Input) (string, error) {
	if in.Description == "" {
		return "", skip("no description provided for the misleading-description check")
	}
	if len(in.ManuscriptText) < 200 {
		return "", skip("manuscript text too short or not provided for a meaningful description-vs-content comparison")
	}
	prompt := fmt.Sprintf(`You are a book content quality assistant. Compare the book description with the manuscript text snippet.
Book description: --- %s ---
Manuscript snippet: --- %s ---
Identify potential discrepancies that might lead to a poor customer experience due to a misleading description. Look specifically for claims in the description not clearly supported or contradicted by the manuscript snippet.
List significant discrepancies as actionable bullet points, explaining each mismatch and suggesting ways to make the description more accurate.
If generally aligned, state: "Description and manuscript snippet appear generally aligned regarding key claims based on this limited comparison."`,
		in.Description, firstN(in.ManuscriptText, 1000))
	return a.invoke(ctx, prompt, 500)
}

func (a *Analyzer) checkFreelyAvailableContent(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 300 {
		return "", skip("manuscript text too short or not provided for the freely-available-content check")
	}
	samples := a.sampleSentences(in.ManuscriptText, 3)
	if len(samples) == 0 {
		return "", skip("could not find enough distinct long sentences for the freely-available-content check")
	}
	var block strings.Builder
	block.WriteString("Sentences to assess:\n")
	for i, sentence := range samples {
		fmt.Fprintf(&block, "%d. %q\n", i+1, sentence)
	}
	prompt := fmt.Sprintf(`%s
For each numbered sentence above, assess the likelihood (Low, Medium, High) of it being commonly found verbatim on the public web, with a brief justification. Format: "* Sentence X: [Likelihood] - [Justification]"
Conclude with this reminder: "Ensure you hold all publishing rights. Publishing platforms prohibit copyrighted content freely available on the web unless you are the owner or have permission."
Present as a structured list.`, block.String())
	return a.invoke(ctx, prompt, 700)
}

func (a *Analyzer) checkTyposPlaceholders(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 100 {
		return "", skip("manuscript text too short or not provided for the quality, placeholder and accessibility checks")
	}
	chunk := firstN(in.ManuscriptText, 4000)
	prompt := fmt.Sprintf(`You are a manuscript quality assistant. Review this snippet for:
1. Typos/grammar: list up to 5-7 noticeable errors (original -> suggested).
2. Placeholder text: identify common placeholders ("Lorem Ipsum", "Insert Chapter Title Here", etc.).
3. Accessibility hints: identify elements needing accessibility considerations (undescribed images, poorly structured lists), with actionable suggestions.
If no issues for a category, state "No specific issues noted in this snippet."
Manuscript snippet: --- %s ---`, chunk)
	return a.invoke(ctx, prompt, 1800)
}

func (a *Analyzer) checkGeneralQuality(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 200 {
		return "", skip("manuscript text too short or not provided for the general quality check")
	}
	chunk := firstN(in.ManuscriptText, 3000)
	prompt := fmt.Sprintf(`You are a book content quality reviewer. Analyze this snippet for general quality issues. Provide actionable bullet points per category if issues are found; if none, state "No specific issues noted in this snippet."
1. Incomplete content/abrupt endings: signs the content ends abruptly, is missing chapters, or refers to content not present. Give specific examples and suggest checking completeness.
2. Distracting formatting (from text patterns): overuse of ALL CAPS, excessive or inconsistent bolding/italics hindering readability. Give specific examples.
3. Inappropriate solicitation in narrative: direct requests for reviews, ratings or social follows within the main narrative (not end matter). Quote the phrase, advise removing or relocating it.
4. Basic structure issues (from text patterns): list items run together, confusing dialogue presentation (missing speaker attribution or quotes). Advise review.
Manuscript snippet: --- %s ---
Be specific with examples and suggest fixes.`, chunk)
	return a.invoke(ctx, prompt, 1200)
}

// urlPattern finds http/ftp/www links in manuscript text.
var urlPattern = regexp.MustCompile(`(?:(?:https?|ftp)://|www\.)[\w/\-?=%.~+#&;]+`)

func (a *Analyzer) checkLinks(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 50 {
		return "", skip("manuscript text too short or not provided for link analysis")
	}
	found := urlPattern.FindAllString(in.ManuscriptText, -1)
	if len(found) == 0 {
		return "", skip("no URLs detected in the manuscript text")
	}
	unique := dedupe(found)
	sample := unique
	if len(sample) > 5 {
		sample = sample[:5]
	}
	prompt := fmt.Sprintf(`You are a publishing content policy assistant. These URLs were found in a manuscript:
%s
Provide feedback on link policy as actionable bullet points:
1. Functionality & relevance: stress that links must be functional and relevant.
2. Prohibited link types: warn against links to pornography, competing eBook stores, web forms collecting extensive personal data, or illegal/harmful/infringing/malicious destinations.
3. Descriptive link text: advise descriptive text (e.g. "View author page") over "click here" or raw URLs.
4. Bonus content placement: remind that bonus content must not be frontloaded or disruptive.
5. Mandatory action: state that the author must manually test every link in a previewer before publishing.`,
		strings.Join(sample, "\n"))
	feedback, err := a.invoke(ctx, prompt, 800)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("Detected URLs for review: %s", strings.Join(sample, ", "))
	if len(unique) > 5 {
		header += " (and more)"
	}
	return header + "\n" + feedback, nil
}

func (a *Analyzer) checkDuplicatedText(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 500 {
		return "", skip("manuscript text too short or not provided for duplicated-text analysis")
	}
	chunk := firstN(in.ManuscriptText, 5000)
	prompt := fmt.Sprintf(`You are a manuscript quality assistant. Analyze this snippet for potentially unintentional duplicated text blocks.
Focus on substantial verbatim or near-verbatim repetitions (sentences or paragraphs) that look like copy-paste errors, not intentional literary devices.
For each suspected unintentional duplication (up to 3 examples): provide a short snippet (10-15 words) of the duplicated text, explain why it seems unintentional, and suggest the author review it.
If there are no obvious unintentional duplications, state: "No significant unintentional text duplications identified in this snippet."
Present as a bulleted list. Manuscript snippet: --- %s ---`, chunk)
	return a.invoke(ctx, prompt, 800)
}

func (a *Analyzer) checkDisappointingContent(ctx context.Context, in Input) (string, error) {
	if in.ManuscriptText == "" && in.Description == "" {
		return "", skip("manuscript and description needed for the disappointing-content checks")
	}
	prompt := fmt.Sprintf(`You are a book content quality assistant. Review for "disappointing content" issues and answer with actionable bullet points.
Book description: %q
Manuscript snippet: %q
Is a translation: %v
Check for:
1. Content too short (impression): based only on the snippet and description, does the content seem unusually brief for what the description implies? If so, suggest the author verify the full length meets expectations.
2. Poorly translated (if applicable): if this is a translation, does the snippet contain awkward phrasing or unnatural grammar suggesting a poor translation? Give a specific example and suggest professional review. If not a translation or quality is fine, state that.
3. Primary purpose solicitation/advertisement: does the description or snippet seem overwhelmingly focused on soliciting or advertising rather than substantive content? If so, suggest toning it down.
4. Bonus content placement (advisory): remind that bonus content must not appear before the primary content.
If no specific issues for a point, state "No immediate concerns noted for [point name] based on provided text."`,
		firstN(in.Description, 500), firstN(in.ManuscriptText, 2000), in.IsTranslation)
	return a.invoke(ctx, prompt, 1000)
}

func (a *Analyzer) checkPublicDomainStatement(ctx context.Context, in Input) (string, error) {
	if strings.TrimSpace(in.DifferentiationStatement) == "" {
		return "", skip("public-domain book, but no differentiation statement provided for assessment; ensure differentiation is clear in the description")
	}
	prompt := fmt.Sprintf(`The author states this book is in the public domain. Their differentiation statement: %q
Assess it against the bar of *substantial* differentiation (unique original annotations or analysis, a new original translation, unique original illustrations, or a curated unique collection with an original introduction). Minor formatting or cover changes are not substantial.
Does the statement clearly describe substantial differentiation? Does it sound like a genuine value-add or minor repackaging? Give a brief overall assessment and 1-2 actionable bullet points to strengthen it if weak or unclear. If strong, say so.`,
		in.DifferentiationStatement)
	return a.invoke(ctx, prompt, 700)
}

func (a *Analyzer) checkLanguageConsistency(ctx context.Context, in Input) (string, error) {
	if len(in.ManuscriptText) < 100 {
		return "", skip("manuscript snippet too short for language detection")
	}
	if in.Language == "" {
		return "", skip("metadata language not selected for the consistency check")
	}
	prompt := fmt.Sprintf(`Analyze the primary language of this snippet. Respond ONLY with the language name (e.g. "English"). If mixed, name the predominant one.
Snippet: --- %s ---
Detected language:`, firstN(in.ManuscriptText, 1500))
	detected, err := a.invoke(ctx, prompt, 50)
	if err != nil {
		return "", err
	}
	detected = strings.TrimSuffix(strings.TrimSpace(strings.SplitN(detected, "\n", 2)[0]), ".")
	if languagesMatch(in.Language, detected) {
		return fmt.Sprintf("Detected language %q is consistent with the metadata language %q.", detected, in.Language), nil
	}
	return fmt.Sprintf("Language mismatch: metadata says %q but the manuscript snippet reads as %q. Ensure they match before submitting.",
		in.Language, detected), nil
}

// languagesMatch compares language names leniently: case-insensitive, with
// any parenthetical qualifier stripped, and tolerant of one name containing
// the other ("Portuguese" vs "Brazilian Portuguese").
func languagesMatch(metadata, detected string) bool {
	norm := func(s string) string {
		if i := strings.Index(s, "("); i >= 0 {
			s = s[:i]
		}
		return strings.ToLower(strings.TrimSpace(s))
	}
	m, d := norm(metadata), norm(detected)
	if m == "" || d == "" {
		return false
	}
	return m == d || strings.Contains(m, d) || strings.Contains(d, m)
}

// sentenceEndPattern marks sentence boundaries. Splitting happens on the
// whitespace after terminal punctuation.
var sentenceEndPattern = regexp.MustCompile(`[.?!]\s+`)

// sampleSentences picks up to n distinct long sentences from the manuscript
// at random. The length filter keeps only sentences with enough signal for a
// verbatim-match assessment.
func (a *Analyzer) sampleSentences(text string, n int) []string {
	var sentences []string
	text = strings.TrimSpace(text)
	last := 0
	for _, loc := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		sentences = append(sentences, strings.TrimSpace(text[last:loc[0]+1]))
		last = loc[1]
	}
	if last < len(text) {
		sentences = append(sentences, strings.TrimSpace(text[last:]))
	}

	seen := make(map[string]bool)
	var candidates []string
	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		if words > 15 && words < 60 && len(sentence) > 80 && !seen[sentence] {
			seen[sentence] = true
			candidates = append(candidates, sentence)
		}
	}
	if len(candidates) > n {
		a.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:n]
	}
	return candidates
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func dedupe(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// internal/render/html.go
//
// HTML presentation for the browser client.
//   - FeedbackHTML: one coloured <span> per guessed word.
//   - Page: full page (acronym, attempts, history, hint, outcome, forms).
//
// Colours follow the original game: green #c7f9cc (correct), yellow #fff3b0
// (present), red #f4cccc (absent).

package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/robalobadob/proverbial/internal/game"
)

var verdictColor = map[game.Verdict]string{
	game.Correct: "#c7f9cc",
	game.Present: "#fff3b0",
	game.Absent:  "#f4cccc",
}

// FeedbackHTML renders words with their verdict colours.
func FeedbackHTML(words []string, fb game.Feedback) template.HTML {
	var b strings.Builder
	for i, w := range words {
		if i >= len(fb) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(`<span class="word `)
		b.WriteString(string(fb[i]))
		b.WriteString(`" style="background-color:`)
		b.WriteString(verdictColor[fb[i]])
		b.WriteString(`;padding:0.2em 0.4em;border-radius:0.3em;">`)
		b.WriteString(template.HTMLEscapeString(w))
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}

// PageData is everything the page template needs.
type PageData struct {
	Session *game.Session
	Hint    string // set only on the response that records the 3rd guess
	Warning string // validation message from the last submission
	Notice  string // informational message, e.g. after restart
}

// AttemptView is one numbered row of the history.
type AttemptView struct {
	N    int
	Line template.HTML
}

// Attempts pairs each recorded guess with its rendered feedback.
func (d PageData) Attempts() []AttemptView {
	out := make([]AttemptView, 0, len(d.Session.Guesses))
	for i, g := range d.Session.Guesses {
		out = append(out, AttemptView{N: i + 1, Line: FeedbackHTML(g, d.Session.Feedbacks[i])})
	}
	return out
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>The Proverbial Challenge</title>
</head>
<body style="max-width:42em;margin:2em auto;font-family:Georgia,serif;">
<h1 style="text-align:center;">The Proverbial Challenge</h1>
<p style="text-align:center;font-size:1.2em;">Decode the daily proverb from its acronym. You have 6 attempts!</p>
{{with .Session}}
<h3>Acronym: {{.Puzzle.Acronym}}</h3>
<p><strong>Attempts left:</strong> {{.AttemptsLeft}}</p>
{{end}}
{{with .Attempts}}
<h4>Previous Attempts</h4>
{{range .}}<p><strong>Attempt {{.N}}:</strong><br>{{.Line}}</p>
{{end}}{{end}}
{{with .Hint}}<p class="hint"><strong>Hint:</strong> {{.}}</p>{{end}}
{{with .Warning}}<p class="warning" style="color:#8a6d3b;">{{.}}</p>{{end}}
{{with .Notice}}<p class="notice">{{.}}</p>{{end}}
{{if eq .Session.State "won"}}<p class="success">Congratulations! You solved it!</p>{{end}}
{{if eq .Session.State "lost"}}<p class="error">No attempts left! The solution was:</p>
<p class="solution">{{.Session.Reveal}}</p>{{end}}
{{if .Session.Over}}
<form method="post" action="/"><input type="hidden" name="action" value="restart">
<button type="submit">Try Another Random Proverb</button></form>
{{else}}
<form method="post" action="/">
<label>Enter your full guess (complete proverb): <input name="guess" autocomplete="off" autofocus></label>
<button type="submit">Submit Guess</button>
</form>
{{end}}
</body>
</html>
`))

// Page writes the full HTML page for d.
func Page(w io.Writer, d PageData) error {
	return pageTmpl.Execute(w, d)
}

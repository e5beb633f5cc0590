package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"swiss/internal/report"
	"swiss/internal/swiss"

	"github.com/russross/blackfriday/v2"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Swiss tournament</title>
</head>
<body>
{{ .Body }}
</body>
</html>
`))

// index renders the standings and next round as an HTML page. The page is
// written in Markdown first so the CLI and the web show the same tables.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	standings, err := s.tournament.Standings(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var md bytes.Buffer
	md.WriteString("# Standings\n\n")
	if err := report.Standings(&md, standings); err != nil {
		s.fail(w, r, err)
		return
	}

	md.WriteString("\n# Next round\n\n")
	pairings, err := swiss.Pair(standings)
	switch {
	case err == nil:
		if err := report.Pairings(&md, pairings); err != nil {
			s.fail(w, r, err)
			return
		}
	case errors.Is(err, swiss.ErrInvalidInput), errors.Is(err, swiss.ErrNotFound):
		md.WriteString("No pairings: ")
		md.WriteString(err.Error())
		md.WriteString("\n")
	default:
		s.fail(w, r, err)
		return
	}

	ratings, err := s.ratings(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	md.WriteString("\n# Ratings\n\n")
	if err := report.Ratings(&md, ratings); err != nil {
		s.fail(w, r, err)
		return
	}

	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, struct{ Body template.HTML }{
		// Names are escaped by the report package.
		Body: template.HTML(blackfriday.Run(md.Bytes())), // nolint:gosec
	}); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page.Bytes()); err != nil {
		s.logger.Error().Err(err).Msg("unable to send response")
	}
}

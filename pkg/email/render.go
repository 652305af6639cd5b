package email

import "strings"

// Row is one label/value line of the notification table. Multiline marks
// values whose newlines should render as line breaks (the free-text message
// field). Rows with an empty value are omitted entirely.
type Row struct {
	Label     string
	Value     string
	Multiline bool
}

// Inline styles for mail-client compatibility; mirrors the site's palette.
const (
	styleContainer = "font-family: Georgia, serif; max-width: 600px; margin: 0 auto; background: #f8f3ea; padding: 0;"
	styleHeader    = "background: #2c1e12; padding: 24px 32px;"
	styleHeaderTxt = "color: #f8f3ea; font-size: 18px; font-style: italic; margin: 0;"
	styleBody      = "padding: 32px;"
	styleTable     = "width: 100%; border-collapse: collapse;"
	styleLabelCell = "padding: 10px 12px; font-size: 12px; text-transform: uppercase; letter-spacing: 0.08em; color: #6b5744; white-space: nowrap; border-bottom: 1px solid #e5dbc8; vertical-align: top; width: 160px;"
	styleValueCell = "padding: 10px 12px; font-size: 14px; color: #2c1e12; border-bottom: 1px solid #e5dbc8; vertical-align: top;"
	styleFooter    = "padding: 16px 32px; border-top: 1px solid #e5dbc8; font-size: 12px; color: #9a8070; text-align: center;"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// renderValue escapes a raw field value for interpolation. Escaping runs
// first, newline substitution second: a user-typed literal "<br>" arrives as
// "&lt;br&gt;" and can never become structural markup.
func renderValue(value string, multiline bool) string {
	escaped := escapeHTML(value)
	if !multiline {
		return escaped
	}
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

// RenderNotification builds the self-contained HTML document sent to the
// operator for one submission. Output is deterministic: the same subject and
// rows always produce byte-identical HTML.
func RenderNotification(subject string, rows []Row) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1"></head>
<body style="margin:0;padding:16px;background:#ede8e0;">
  <div style="` + styleContainer + `">
    <div style="` + styleHeader + `">
      <p style="` + styleHeaderTxt + `">La Belle Détente — ` + escapeHTML(subject) + `</p>
    </div>
    <div style="` + styleBody + `">
      <table style="` + styleTable + `">
`)

	for _, row := range rows {
		if row.Value == "" {
			continue
		}
		b.WriteString(`        <tr>
          <td style="` + styleLabelCell + `">` + escapeHTML(row.Label) + `</td>
          <td style="` + styleValueCell + `">` + renderValue(row.Value, row.Multiline) + `</td>
        </tr>
`)
	}

	b.WriteString(`      </table>
    </div>
    <div style="` + styleFooter + `">Message reçu via le formulaire de contact · labelledetente.fr</div>
  </div>
</body>
</html>`)

	return b.String()
}

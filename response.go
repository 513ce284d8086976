package transitcatalogue

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

// buildErrorPayload renders an error message in the requested format.
func buildErrorPayload(format, msg string) ([]byte, string) {
	switch format {
	case formatter.FormatXML:
		var b strings.Builder
		b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?><Error><Description>")
		b.WriteString(utils.EscapeXML(msg))
		b.WriteString("</Description></Error>")
		return []byte(b.String()), "application/xml"
	case formatter.FormatText:
		return []byte("error: " + msg + "\n"), "text/plain; charset=utf-8"
	default:
		b, _ := json.Marshal(struct {
			Error string `json:"error"`
		}{Error: msg})
		return b, "application/json"
	}
}

func writeError(w http.ResponseWriter, status int, format, msg string) {
	buf, ct := buildErrorPayload(format, msg)
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func writeBody(w http.ResponseWriter, status int, contentType string, buf []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

package core

import (
	"html/template"
	"log/slog"
	"net/http"
)

const PreviewPath = "/__preview"

const previewPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>ogimage preview</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 2rem; background: #f4f4f4; }
    figure { margin: 0 0 2rem; }
    img { width: 600px; height: 315px; background: #fff; box-shadow: 0 1px 4px #0003; }
    figcaption { font-size: 0.85rem; color: #555; word-break: break-all; }
  </style>
</head>
<body>
  <h1>Card preview</h1>
  {{range .Samples}}
  <figure>
    <img src="{{.Path}}" alt="{{.Name}}">
    <figcaption>{{.Name}} &middot; <a href="{{.Path}}">{{.Path}}</a></figcaption>
  </figure>
  {{end}}
  {{if .ReloadPath}}
  <script>
    (function () {
      var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "{{.ReloadPath}}");
      ws.onmessage = function () { location.reload(); };
    })();
  </script>
  {{end}}
</body>
</html>
`

var previewTemplate = template.Must(template.New("preview").Parse(previewPage))

// PreviewHandler serves an HTML gallery of the sample cards. When
// reloadPath is non-empty the page reconnects to it and refreshes on
// every message.
func PreviewHandler(logger *slog.Logger, reloadPath string) http.HandlerFunc {
	if logger == nil {
		logger = discardLogger()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		err := previewTemplate.Execute(w, map[string]any{
			"Samples":    Samples(),
			"ReloadPath": reloadPath,
		})
		if err != nil {
			logger.WarnContext(r.Context(), "preview page failed", "error", err)
		}
	}
}

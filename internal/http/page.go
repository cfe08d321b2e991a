package http

import (
	"html/template"
	"net/http"
)

// panelData feeds the form page template. Result holds the display text for
// the last attempt: the eight-line summary or the failure sentence.
type panelData struct {
	Location string
	Unit     string
	Result   string
}

var panelTemplate = template.Must(template.New("panel").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Weather Panel</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; }
  .container { max-width: 480px; margin: 0 auto; }
  fieldset { margin: 16px 0; border: 1px solid #ccc; border-radius: 5px; }
  label { display: block; margin: 4px 0; }
  input[type=text] { width: 100%; padding: 6px; box-sizing: border-box; }
  button { padding: 8px 16px; }
  pre { background: #f0f0f0; padding: 16px; border-radius: 5px; white-space: pre-wrap; }
</style>
</head>
<body>
<div class="container">
  <h1>Weather Panel</h1>
  <form method="GET" action="/">
    <label for="location">Enter Location:</label>
    <input type="text" id="location" name="location" value="{{.Location}}">
    <fieldset>
      <legend>Select temperature unit:</legend>
      <label><input type="radio" name="unit" value="C"{{if eq .Unit "C"}} checked{{end}}> Celsius</label>
      <label><input type="radio" name="unit" value="F"{{if eq .Unit "F"}} checked{{end}}> Fahrenheit</label>
      <label><input type="radio" name="unit" value="K"{{if eq .Unit "K"}} checked{{end}}> Kelvin</label>
    </fieldset>
    <button type="submit">Get Weather</button>
  </form>
{{if .Result}}  <pre>{{.Result}}</pre>
{{end}}</div>
</body>
</html>
`))

func renderPanel(w http.ResponseWriter, status int, data panelData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = panelTemplate.Execute(w, data)
}

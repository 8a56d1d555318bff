package core

const babyNameLayout = `<svg width="1200" height="630" viewBox="0 0 1200 630" xmlns="http://www.w3.org/2000/svg">
  <!-- Background with 4px border -->
  <rect width="1200" height="630" fill="#FFFFFF" rx="4"/>
  <rect x="4" y="4" width="1192" height="622" fill="#FFFFFF" stroke="#000000" stroke-width="4" rx="4"/>

  <!-- Rounded rect box for name -->
  <rect x="100" y="140" width="1000" height="140" rx="20" fill="#FFFFFF" stroke="#000000" stroke-width="2"/>

  <!-- Name (centered in box) -->
  <text x="600" y="230" font-family="system-ui, -apple-system, sans-serif" font-size="72" font-weight="bold" fill="#000000" text-anchor="middle">{{.Name}}</text>

  <!-- Pronunciation -->
  <text x="600" y="310" font-family="system-ui, -apple-system, sans-serif" font-size="24" fill="#666666" text-anchor="middle" font-style="italic">{{.Pronunciation}}</text>

  <!-- Meaning -->
{{range $i, $line := .Meaning}}{{if $i}}
{{end}}  <text x="600" y="{{$line.Y}}" font-family="system-ui, -apple-system, sans-serif" font-size="28" fill="#000000" text-anchor="middle">{{$line.Text}}</text>{{end}}

  <!-- Story -->
{{range $i, $line := .Story}}{{if $i}}
{{end}}  <text x="600" y="{{$line.Y}}" font-family="system-ui, -apple-system, sans-serif" font-size="22" fill="#333333" text-anchor="middle">{{$line.Text}}</text>{{end}}
` + brandingFooter

const wordLayout = `<svg width="1200" height="630" viewBox="0 0 1200 630" xmlns="http://www.w3.org/2000/svg">
  <!-- Background with 4px border -->
  <rect width="1200" height="630" fill="#FFFFFF" rx="4"/>
  <rect x="4" y="4" width="1192" height="622" fill="#FFFFFF" stroke="#000000" stroke-width="4" rx="4"/>

  <!-- Title -->
  <text x="600" y="80" font-family="system-ui, -apple-system, sans-serif" font-size="24" fill="#666666" text-anchor="middle">Sanskrit Word of the Day</text>

  <!-- Rounded rect box for word -->
  <rect x="150" y="150" width="900" height="180" rx="20" fill="#FFFFFF" stroke="#000000" stroke-width="2"/>

  <!-- Sanskrit word (centered in box) -->
  <text x="600" y="270" font-family="system-ui, -apple-system, sans-serif" font-size="90" font-weight="bold" fill="#000000" text-anchor="middle">{{.Sanskrit}}</text>

  <!-- Transliteration -->
  <text x="600" y="370" font-family="system-ui, -apple-system, sans-serif" font-size="32" fill="#666666" text-anchor="middle" font-style="italic">{{.Transliteration}}</text>

  <!-- Meaning -->
{{range $i, $line := .Meaning}}{{if $i}}
{{end}}  <text x="600" y="{{$line.Y}}" font-family="system-ui, -apple-system, sans-serif" font-size="28" fill="#000000" text-anchor="middle">{{$line.Text}}</text>{{end}}
` + brandingFooter

const brandingFooter = `
  <!-- Branding -->
  <text x="60" y="590" font-family="system-ui, -apple-system, sans-serif" font-size="20" fill="#666666">sanskrit.roj.app</text>
</svg>`

package docs

import "text/template"

type templateData struct {
	GatewayName string
	BaseURL     string
	Count       int
	Table       string
}

var documentTemplate = template.Must(template.New("document").Parse(`---
title: "Supported AI Models"
description: "List of AI models available through {{.GatewayName}}"
---

{{.GatewayName}} provides access to models from multiple leading AI providers. The model list is updated regularly as new models become available.

## Available Models ({{.Count}} models)

Prices are per 1M tokens.

| Model | Provider | Input | Output |
|-------|----------|------:|-------:|
{{.Table}}

<Note>
This list may not reflect the latest additions. Call the ` + "`/v1/models`" + ` endpoint for the most up-to-date list.
</Note>

## Query Models Programmatically

` + "```bash" + `
curl {{.BaseURL}}/v1/models
` + "```" + `
`))

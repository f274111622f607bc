// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rooftab

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("rooftab").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<div class='roofline'>
<p>Roofline analysis: <b>{{.App}}</b><br>
CPU: {{.CPU}} ({{.Cores}} cores, {{.Topology}})</p>
<table class='roofline-units'>
<tr><th>unit<th>kind<th>peak<th>measured<th>% of peak
{{range .Units -}}
<tr><td>{{.Name}}<td>{{.Kind}}<td>{{.Peak}}<td>{{.Measured}}<td>{{.Percent}}
{{end -}}
</table>
{{if .Points}}
<table class='roofline-points'>
<tr><th>compute<th>memory<th>throughput<th>bandwidth<th>intensity
{{range .Points -}}
<tr><td>{{.Compute}}<td>{{.Memory}}<td>{{.Throughput}}<td>{{.Bandwidth}}<td>{{.Intensity}}
{{end -}}
</table>
{{end}}
<p>Bottleneck: {{.Bottleneck}}</p>
{{range .Combined -}}
<p class='note'>* combined measurement shared by {{.}}</p>
{{end -}}
</div>
`)))

func writeHTML(w io.Writer, data *tableData) error {
	return htmlTemplate.Execute(w, data)
}

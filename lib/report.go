package lib

import (
	"io"
	"text/template"
)

var reportTemplate = template.Must(template.New("report").Parse(
	`{{range .Scripts}}== {{.Name}}
{{if .Error}}  error:  {{.Error}}
{{else}}  tokens: {{.TokenCount}}
  tree:   {{.Tree}}
{{end}}{{end}}{{.Passed}} passed, {{.Failed}} failed
`))

type reportViewModel struct {
	Scripts []scriptViewModel
	Passed  int
	Failed  int
}

type scriptViewModel struct {
	Name       string
	TokenCount int
	Tree       string
	Error      string
}

// WriteReport compiles every script and writes a summary of each one. It
// returns the number of scripts that failed to compile; err is only set when
// writing fails.
func WriteReport(writer io.Writer, scripts []Script, opts ParseOptions) (failed int, err error) {
	vm := newReportViewModel(scripts, opts)

	err = reportTemplate.Execute(writer, vm)
	if err != nil {
		return vm.Failed, err
	}
	return vm.Failed, nil
}

func newReportViewModel(scripts []Script, opts ParseOptions) reportViewModel {
	vm := reportViewModel{
		Scripts: []scriptViewModel{},
	}

	for i := range scripts {
		s := &scripts[i]
		svm := scriptViewModel{Name: s.Name}

		if err := s.Compile(opts); err != nil {
			svm.Error = err.Error()
			vm.Failed++
		} else {
			svm.TokenCount = len(s.Tokens)
			svm.Tree = Render(s.AST)
			vm.Passed++
		}

		vm.Scripts = append(vm.Scripts, svm)
	}

	return vm
}

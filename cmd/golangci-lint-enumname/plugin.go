// golangcilintenumname package provides a plugin for golangci-lint to
// integrate the Enumname analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-enumname binary that you can use to lint
// your Go code with the Enumname analyzer. Run it with "--build-tags=enumname"
// so that the directive files are analyzed.
package golangcilintenumname

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/enumname/pkg/enumnameanalysis"
)

func init() {
	register.Plugin("enumname", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return EnumnameLinter{}, nil
}

type EnumnameLinter struct{}

func (EnumnameLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumnameanalysis.Analyzer}, nil
}

func (EnumnameLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

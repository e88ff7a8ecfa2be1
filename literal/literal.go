// Package literal defines an Analyzer that checks calls to fuuid.Literal
// before the program runs.
//
// Every argument to fuuid.Literal must be a constant string that
// fuuid.FromString accepts. The analyzer reports non-constant arguments,
// invalid constants, and uses of fuuid.Literal as a function value, which
// would hide the argument from the check.
package literal

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/Lzww0608/fuuid"
	"github.com/Lzww0608/fuuid/internal/diag"
)

const doc = `check fuuid.Literal arguments

fuuid.Literal panics on invalid input. This analyzer proves it cannot:
each argument must be a compile-time constant string accepted by
fuuid.FromString. Runtime values must use fuuid.FromString instead.`

// Analyzer reports invalid fuuid.Literal calls.
var Analyzer = &analysis.Analyzer{
	Name:     "fuuidliteral",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

const (
	fuuidPath   = "github.com/Lzww0608/fuuid"
	literalName = "Literal"
)

func isLiteralFunc(obj types.Object) bool {
	fn, ok := obj.(*types.Func)
	return ok && fn != nil && fn.Pkg() != nil && fn.Pkg().Path() == fuuidPath && fn.Name() == literalName
}

func run(pass *analysis.Pass) (any, error) {
	// The defining package exercises the panic path on purpose.
	if pass.Pkg.Path() == fuuidPath {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	called := make(map[*ast.Ident]bool)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if !isLiteralFunc(typeutil.StaticCallee(pass.TypesInfo, call)) {
			return
		}
		if id := calleeIdent(call.Fun); id != nil {
			called[id] = true
		}
		if len(call.Args) != 1 {
			return
		}
		checkArg(pass, call.Args[0])
	})

	for id, obj := range pass.TypesInfo.Uses {
		if isLiteralFunc(obj) && !called[id] {
			pass.Reportf(id.Pos(), "fuuid.Literal must be called directly so its argument can be checked")
		}
	}
	return nil, nil
}

func checkArg(pass *analysis.Pass, arg ast.Expr) {
	tv, ok := pass.TypesInfo.Types[arg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		pass.Reportf(arg.Pos(), "fuuid.Literal requires a constant string; use fuuid.FromString for runtime values")
		return
	}
	s := constant.StringVal(tv.Value)
	if _, err := fuuid.FromString(s); err != nil {
		pass.Reportf(arg.Pos(), "invalid fuuid.Literal %q: %s", s, diag.Rename(err.Error()))
	}
}

// calleeIdent returns the identifier naming the called function.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

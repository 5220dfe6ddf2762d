package parser

import (
	"fmt"
	"testing"

	"github.com/nalgeon/be"

	"github.com/vane-lang/vane/ast"
)

func TestProgramMinimalFunction(t *testing.T) {
	p := New("int main() { return 0; }", "", nil)
	program, err := p.Program()
	be.Equal(t, err, nil)
	be.Equal(t, len(program.Functions), 1)
	be.Equal(t, program.Functions[0].Name, "main")
	be.True(t, program.Functions[0].Detached)
}

func TestProgramClassWithMethodDesugarsReceiver(t *testing.T) {
	src := `
class Point {
	int x;
	int y;

	int length() {
		return this.x;
	}
}

int main() {
	Point p;
	int result = p.length();
	return result;
}
`
	p := New(src, "", nil)
	program, err := p.Program()
	be.Equal(t, err, nil)
	be.Equal(t, len(program.Classes), 1)
	be.Equal(t, program.Classes[0].Name, "Point")
	be.Equal(t, program.Classes[0].Members[0].Name, "x")
	be.Equal(t, program.Classes[0].Members[1].Name, "y")

	var method, main *ast.FunctionDecl
	for _, fn := range program.Functions {
		switch fn.Name {
		case "Point_length":
			method = fn
		case "main":
			main = fn
		}
	}
	be.True(t, method != nil)
	be.True(t, !method.Detached)
	be.Equal(t, method.Params[0].Name, "this")

	be.True(t, main != nil)
}

func TestProgramPointerArithmeticParses(t *testing.T) {
	src := `
int main() {
	ptr int p;
	int offset = 1;
	int value = p[offset];
	return value;
}
`
	p := New(src, "", nil)
	_, err := p.Program()
	be.Equal(t, err, nil)
}

func TestProgramImportIsIdempotentAcrossFiles(t *testing.T) {
	files := map[string]string{
		"/virtual/util.vane": "int helper() { return 1; }",
		"/virtual/main.vane": `
import "util.vane";
import "util.vane";

int main() {
	return helper();
}
`,
	}
	readFile := func(path string) (string, error) {
		if src, ok := files[path]; ok {
			return src, nil
		}
		return "", fmt.Errorf("no such file: %s", path)
	}

	p := New(files["/virtual/main.vane"], "/virtual/main.vane", readFile)
	program, err := p.Program()
	be.Equal(t, err, nil)

	helperCount := 0
	for _, fn := range program.Functions {
		if fn.Name == "helper" {
			helperCount++
		}
	}
	be.Equal(t, helperCount, 1)
}

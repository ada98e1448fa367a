package interp_test

import (
	"strings"
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, err := parser.Parse([]byte(src))
	require.NoError(t, err)

	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var sb strings.Builder
	it := interp.NewInterpreter(&sb)
	err = it.Interpret(stmts, locals)
	return sb.String(), err
}

func TestPrintArithmeticAndIntegralNumbers(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestStringConcatenationAndTruthiness(t *testing.T) {
	out, err := run(t, `
		print "foo" + "bar";
		if (0) { print "zero is truthy"; }
		if ("") { print "empty string is truthy"; }
	`)
	require.NoError(t, err)
	require.Equal(t, "foobar\nzero is truthy\nempty string is truthy\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) { print i; i = i + 1; }
	`)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestShortCircuitOr(t *testing.T) {
	out, err := run(t, `
		fun noisy() { print "evaluated"; return true; }
		true or noisy();
		false or noisy();
	`)
	require.NoError(t, err)
	require.Equal(t, "evaluated\n", out)
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", out)
}

func TestClassInstantiationAndMethod(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print "hello, " + this.name; }
		}
		var g = Greeter("world");
		g.greet();
	`)
	require.NoError(t, err)
	require.Equal(t, "hello, world\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	require.NoError(t, err)
	require.Equal(t, "...\nwoof\n", out)
}

func TestRuntimeErrorOnTypeMismatch(t *testing.T) {
	_, err := run(t, `print 1 + "two";`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable 'nope'.")
}

func TestForLoopBodyGetsAFreshVariablePerIteration(t *testing.T) {
	out, err := run(t, `
		var last;
		for (var i = 0; i < 3; i = i + 1) {
			var captured = i;
			fun show() { print captured; }
			last = show;
		}
		last();
	`)
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

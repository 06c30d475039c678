package evaluator

import (
	"errors"
	"fmt"
	"math"

	"github.com/navionguy/flatbasic/ast"
	"github.com/navionguy/flatbasic/berrors"
	"github.com/navionguy/flatbasic/object"
)

// Run executes the program from its first statement until the
// counter leaves the program or a runtime error occurs
// nothing else stops it, a program that loops forever runs forever
func Run(prog *ast.Program, env *object.Environment) error {
	env.SetCounter(0)

	for (env.Counter() >= 0) && (env.Counter() < prog.Len()) {
		idx := env.Counter()
		stmt := prog.Statement(idx)

		if env.GetTrace() {
			env.Terminal().Print(fmt.Sprintf("[%d]", idx))
		}

		env.SetCounter(idx + 1)

		if err := Exec(stmt, idx, prog, env); err != nil {
			return evalStatementsErrorChk(err, idx, stmt)
		}
	}

	return nil
}

// tag runtime errors with where they happened
func evalStatementsErrorChk(err error, idx int, stmt ast.Statement) error {
	var re *berrors.RuntimeError
	if errors.As(err, &re) {
		re.At(idx, stmt.TokenLiteral())
		return err
	}
	return fmt.Errorf("%s at statement %d: %w", stmt.TokenLiteral(), idx, err)
}

// Exec runs the single statement found at index idx
// the counter has already been moved past it
func Exec(stmt ast.Statement, idx int, prog *ast.Program, env *object.Environment) error {
	switch stmt := stmt.(type) {
	case *ast.EndStatement:
		env.SetCounter(prog.Len())

	case *ast.ForStatement:
		return evalForStatement(stmt, idx, env)

	case *ast.GotoStatement:
		return evalGotoStatement(stmt, prog, env)

	case *ast.IfStatement:
		return evalIfStatement(stmt, idx, prog, env)

	case *ast.LetStatement:
		val, err := Eval(stmt.Value, env)
		if err != nil {
			return err
		}
		env.Set(stmt.Name.Value, val)

	case *ast.NoOpStatement:

	case *ast.PlotStatement:
		return evalPlotStatement(stmt, env)

	case *ast.PrintStatement:
		return evalPrintStatement(stmt, env)

	case *ast.ScreenStatement:
		return evalScreenStatement(stmt, env)

	default:
		return berrors.New(berrors.Syntax, stmt.TokenLiteral())
	}

	return nil
}

// the first visit starts the loop, every later visit bumps the count
// and checks it against an end value that is re-evaluated each time
func evalForStatement(fs *ast.ForStatement, idx int, env *object.Environment) error {
	count, ok := env.LoopProgress(idx)

	if !ok {
		start, err := Eval(fs.Start, env)
		if err != nil {
			return err
		}
		env.Set(fs.Name, start)
		env.SetLoopProgress(idx, start)
		return nil
	}

	count++
	env.Set(fs.Name, count)
	env.SetLoopProgress(idx, count)

	end, err := Eval(fs.End, env)
	if err != nil {
		return err
	}

	if count > end {
		env.Delete(fs.Name)
		env.ClearLoop(idx)
		env.SetCounter(fs.Exit)
	}

	return nil
}

func evalGotoStatement(gs *ast.GotoStatement, prog *ast.Program, env *object.Environment) error {
	if !gs.Symbolic() {
		env.SetCounter(gs.Index)
		return nil
	}

	idx, ok := prog.Lookup(gs.Label)
	if !ok {
		return berrors.New(berrors.UnDefinedLineNumber, gs.Label)
	}

	env.SetCounter(idx)
	return nil
}

// only a condition of exactly true runs the consequence
func evalIfStatement(is *ast.IfStatement, idx int, prog *ast.Program, env *object.Environment) error {
	cond, err := Eval(is.Condition, env)
	if err != nil {
		return err
	}

	if cond != object.True {
		return nil
	}

	return Exec(is.Consequence, idx, prog, env)
}

func evalPlotStatement(ps *ast.PlotStatement, env *object.Environment) error {
	surface := env.Surface()
	if surface == nil {
		return berrors.New(berrors.IllegalFuncCallErr, "")
	}

	vals, err := evalExpressions([]ast.Expression{ps.X, ps.Y, ps.Color}, env)
	if err != nil {
		return err
	}

	x, y := vals[0], vals[1]

	// there is no pixel at NaN or infinity
	if !isFinite(x) || !isFinite(y) {
		return nil
	}

	surface.SetPixel(int(x), int(y), vals[2]/object.ColorLevels)
	return nil
}

func evalPrintStatement(ps *ast.PrintStatement, env *object.Environment) error {
	for _, item := range ps.Items {
		val, err := Eval(item, env)
		if err != nil {
			return err
		}
		env.Terminal().Println(object.FormatNumber(val))
	}
	return nil
}

// mode 13 opens the graphics screen, any other mode is ignored
func evalScreenStatement(ss *ast.ScreenStatement, env *object.Environment) error {
	mode, err := Eval(ss.Mode, env)
	if err != nil {
		return err
	}

	if mode != object.ScreenMode {
		return nil
	}

	display := env.Display()
	if display == nil {
		return berrors.New(berrors.IllegalFuncCallErr, "")
	}

	surface, err := display.Open(object.ScreenWidth, object.ScreenHeight, object.ScreenScale)
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}

	env.SetSurface(surface)
	return nil
}

// Eval returns the value of an expression
// the left side of every operator is fully evaluated before the right
func Eval(exp ast.Expression, env *object.Environment) (float64, error) {
	switch exp := exp.(type) {
	case *ast.CallExpression:
		return evalCallExpression(exp, env)

	case *ast.Identifier:
		return evalIdentifier(exp, env)

	case *ast.InfixExpression:
		left, err := Eval(exp.Left, env)
		if err != nil {
			return 0, err
		}

		right, err := Eval(exp.Right, env)
		if err != nil {
			return 0, err
		}

		return evalInfixExpression(exp.Operator, left, right)

	case *ast.NumberLiteral:
		return exp.Value, nil
	}

	return 0, berrors.New(berrors.MissingOp, "")
}

func evalExpressions(exps []ast.Expression, env *object.Environment) ([]float64, error) {
	var result []float64

	for _, e := range exps {
		val, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}

	return result, nil
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) (float64, error) {
	val, ok := env.Get(node.Value)
	if !ok {
		return 0, berrors.New(berrors.UndefinedVariable, node.Value)
	}
	return val, nil
}

// arithmetic follows IEEE rules, dividing by zero is not an error
func evalInfixExpression(operator string, left, right float64) (float64, error) {
	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	case "^":
		return math.Pow(left, right), nil
	case "=":
		return object.Bool(left == right), nil
	case "<":
		return object.Bool(left < right), nil
	case "<=":
		return object.Bool(left <= right), nil
	case ">":
		return object.Bool(left > right), nil
	case ">=":
		return object.Bool(left >= right), nil
	}

	return 0, berrors.New(berrors.Syntax, operator)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

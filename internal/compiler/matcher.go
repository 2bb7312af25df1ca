package compiler

import (
	"sort"

	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// matcherFile builds the generated matcher: a stateless struct with a
// direct-coded Step function and the Match helpers driving it.
func (c *Compiler) matcherFile() *jen.File {
	name := c.config.Name
	f := jen.NewFile(c.config.Package)
	c.headerComment(f)

	f.Commentf("%s matches whole inputs against %q.", name, c.config.Pattern)
	f.Type().Id(name).Struct()
	f.Line()

	f.Var().Id(codegen.CompiledName(name)).Op("=").Id(name).Values()
	f.Line()

	f.Const().Id(codegen.StartName(name)).Op("=").Lit(c.dfa.Initial)
	f.Line()

	c.logger.Log("Generating Step (%d live states)", c.live.Count())
	c.method(f, "Step").
		Params(jen.Id(codegen.StateName).Int(), jen.Id(codegen.RuneName).Rune()).
		Params(jen.Int(), jen.Bool()).
		Block(c.stepBody()...)
	f.Line()

	c.method(f, "IsFinal").
		Params(jen.Id(codegen.StateName).Int()).
		Bool().
		Block(c.isFinalBody()...)
	f.Line()

	c.method(f, "MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Bool().
		Block(
			jen.Id(codegen.StateName).Op(":=").Id(codegen.StartName(name)),
			jen.For(jen.List(jen.Id("_"), jen.Id(codegen.RuneName)).Op(":=").Range().Id(codegen.InputName)).Block(
				c.advance()...,
			),
			jen.Return(jen.Id(codegen.ReceiverName).Dot("IsFinal").Call(jen.Id(codegen.StateName))),
		)
	f.Line()

	decode := []jen.Code{
		jen.List(jen.Id(codegen.RuneName), jen.Id(codegen.SizeName)).Op(":=").
			Qual("unicode/utf8", "DecodeRune").Call(jen.Id(codegen.InputName)),
	}
	decode = append(decode, c.advance()...)
	decode = append(decode,
		jen.Id(codegen.InputName).Op("=").Id(codegen.InputName).Index(jen.Id(codegen.SizeName).Op(":")),
	)
	c.method(f, "MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Bool().
		Block(
			jen.Id(codegen.StateName).Op(":=").Id(codegen.StartName(name)),
			jen.For(jen.Len(jen.Id(codegen.InputName)).Op(">").Lit(0)).Block(decode...),
			jen.Return(jen.Id(codegen.ReceiverName).Dot("IsFinal").Call(jen.Id(codegen.StateName))),
		)

	return f
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(f *jen.File, name string) *jen.Statement {
	return f.Func().
		Params(jen.Id(codegen.ReceiverName).Id(c.config.Name)).
		Id(name)
}

// advance feeds the current rune to Step, rejecting on a dead transition.
func (c *Compiler) advance() []jen.Code {
	return []jen.Code{
		jen.List(jen.Id(codegen.NextName), jen.Id("ok")).Op(":=").
			Id(codegen.ReceiverName).Dot("Step").Call(jen.Id(codegen.StateName), jen.Id(codegen.RuneName)),
		jen.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.False())),
		jen.Id(codegen.StateName).Op("=").Id(codegen.NextName),
	}
}

// stepBody renders the transition table as nested switches. Transitions
// into dead states are omitted, so Step reports false as soon as no final
// state can be reached.
func (c *Compiler) stepBody() []jen.Code {
	alphabet := c.dfa.SortedAlphabet()

	var stateCases []jen.Code
	for state := 0; state < c.dfa.States.Len(); state++ {
		if !c.isLive(state) {
			continue
		}

		byTarget := make(map[int][]automaton.Symbol)
		for _, sym := range alphabet {
			next, ok := c.dfa.Step(state, sym)
			if !ok || !c.isLive(next) {
				continue
			}
			byTarget[next] = append(byTarget[next], sym)
		}
		if len(byTarget) == 0 {
			continue
		}

		targets := make([]int, 0, len(byTarget))
		for next := range byTarget {
			targets = append(targets, next)
		}
		sort.Ints(targets)

		runeCases := make([]jen.Code, 0, len(targets))
		for _, next := range targets {
			runeCases = append(runeCases,
				jen.Case(runeLits(byTarget[next])...).Block(
					jen.Return(jen.Lit(next), jen.True()),
				),
			)
		}

		stateCases = append(stateCases,
			jen.Case(jen.Lit(state)).Block(
				jen.Comment(codegen.StateComment(state, c.dfa.IsFinal(state))),
				jen.Switch(jen.Id(codegen.RuneName)).Block(runeCases...),
			),
		)
	}

	var code []jen.Code
	if len(stateCases) > 0 {
		code = append(code, jen.Switch(jen.Id(codegen.StateName)).Block(stateCases...))
	}
	return append(code, jen.Return(jen.Lit(-1), jen.False()))
}

func (c *Compiler) isFinalBody() []jen.Code {
	var finals []jen.Code
	for state := 0; state < c.dfa.States.Len(); state++ {
		if c.dfa.IsFinal(state) {
			finals = append(finals, jen.Lit(state))
		}
	}
	if len(finals) == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}
	return []jen.Code{
		jen.Switch(jen.Id(codegen.StateName)).Block(
			jen.Case(finals...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	}
}

func (c *Compiler) isLive(state int) bool {
	return c.live.Test(uint(state))
}

func runeLits(syms []automaton.Symbol) []jen.Code {
	lits := make([]jen.Code, len(syms))
	for i, sym := range syms {
		lits[i] = jen.LitRune(sym)
	}
	return lits
}

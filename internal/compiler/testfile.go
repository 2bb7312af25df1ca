package compiler

import (
	"fmt"
	"os"

	"github.com/KromDaniel/lexgen/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// testFile builds a _test.go file that pins the verdict the in-memory DFA
// gives for every configured input.
func (c *Compiler) testFile() *jen.File {
	name := c.config.Name
	compiled := codegen.CompiledName(name)

	f := jen.NewFile(c.config.Package)
	c.headerComment(f)

	cases := make([]jen.Code, 0, len(c.config.TestFileInputs))
	for _, input := range c.config.TestFileInputs {
		cases = append(cases, jen.Values(jen.Lit(input), jen.Lit(c.dfa.Accept(input))))
	}

	f.Func().Id(fmt.Sprintf("Test%sMatch", name)).
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("tests").Op(":=").Index().Struct(
				jen.Id(codegen.InputName).String(),
				jen.Id("want").Bool(),
			).Values(cases...),
			jen.Line(),
			jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
				jen.Id("t").Dot("Run").Call(
					jen.Qual("fmt", "Sprintf").Call(jen.Lit("%q"), jen.Id("tt").Dot(codegen.InputName)),
					jen.Func().Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
						jen.If(
							jen.Id("got").Op(":=").Id(compiled).Dot("MatchString").Call(jen.Id("tt").Dot(codegen.InputName)),
							jen.Id("got").Op("!=").Id("tt").Dot("want"),
						).Block(
							jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchString(%q) = %v, want %v"), jen.Id("tt").Dot(codegen.InputName), jen.Id("got"), jen.Id("tt").Dot("want")),
						),
						jen.If(
							jen.Id("got").Op(":=").Id(compiled).Dot("MatchBytes").Call(jen.Index().Byte().Call(jen.Id("tt").Dot(codegen.InputName))),
							jen.Id("got").Op("!=").Id("tt").Dot("want"),
						).Block(
							jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchBytes(%q) = %v, want %v"), jen.Id("tt").Dot(codegen.InputName), jen.Id("got"), jen.Id("tt").Dot("want")),
						),
					),
				),
			),
		)
	f.Line()

	inputs := make([]jen.Code, len(c.config.TestFileInputs))
	for i, input := range c.config.TestFileInputs {
		inputs[i] = jen.Lit(input)
	}
	f.Func().Id(fmt.Sprintf("Benchmark%sMatchString", name)).
		Params(jen.Id("b").Op("*").Qual("testing", "B")).
		Block(
			jen.Id("inputs").Op(":=").Index().String().Values(inputs...),
			jen.Id("b").Dot("ResetTimer").Call(),
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id(codegen.InputName)).Op(":=").Range().Id("inputs")).Block(
					jen.Id(compiled).Dot("MatchString").Call(jen.Id(codegen.InputName)),
				),
			),
		)

	return f
}

func (c *Compiler) generateTestFile() error {
	src, err := render(c.testFile())
	if err != nil {
		return err
	}
	path := c.testFilePath()
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s (%d inputs)", path, len(c.config.TestFileInputs))
	return nil
}

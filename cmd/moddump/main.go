package main

import (
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/gogpu/sksl"
	"github.com/gogpu/sksl/ir"
)

func main() {
	app := &cli.Command{
		Name:        "moddump",
		Description: "moddump decodes dehydrated shader modules and prints their top-level contents",
		Action:      dumpAct,
		Args:        cli.Args{},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func dumpAct(c *cli.Command) error {
	if len(c.Args) == 0 {
		return errors.New("usage: moddump <module>...")
	}

	for _, a := range c.Args {
		data, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		prog, err := sksl.Rehydrate(data)
		if err != nil {
			return errors.Wrap(err, "rehydrate %v", a)
		}

		tlog.Root().Printw("module decoded",
			"file", a,
			"kind", prog.Kind,
			"elements", len(prog.Elements),
			"flip_rt_uniform", prog.Inputs.UseFlipRTUniform)

		for _, e := range prog.Elements {
			fmt.Println(describe(e))
		}
	}

	return nil
}

func describe(e ir.ProgramElement) string {
	switch e := e.(type) {
	case *ir.FunctionDefinition:
		return "func " + e.Declaration.Description()
	case *ir.FunctionPrototype:
		return "prototype " + e.Declaration.Description()
	case *ir.GlobalVarDeclaration:
		v := e.Declaration.Var
		return fmt.Sprintf("global %v %v", v.Type.TypeName, v.VarName)
	case *ir.InterfaceBlock:
		return fmt.Sprintf("interface block %v (%v)", e.TypeName, e.InstanceName)
	case *ir.StructDefinition:
		return "struct " + e.Type.TypeName
	default:
		return fmt.Sprintf("unknown element %T", e)
	}
}

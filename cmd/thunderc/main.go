// Command thunderc is a client of the thunder compiler: it records a
// fixed set of demonstration procedures through the dsl package, links
// them, and prints the result in one of three textual forms.
//
// Usage:
//
//	thunderc [options]
//
// Examples:
//
//	thunderc                       # GLSL to stdout
//	thunderc -o out.glsl           # GLSL to file
//	thunderc -format assembly      # atom-level assembly dump
//	thunderc -format graphviz      # Graphviz dump of the first procedure
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gogpu/thunder"
	"github.com/gogpu/thunder/dsl"
	"github.com/gogpu/thunder/glsl"
	"github.com/gogpu/thunder/ir"
	"github.com/gogpu/thunder/link"
)

var (
	output      = flag.String("o", "", "output file (default: stdout)")
	format      = flag.String("format", "glsl", "output format: glsl, assembly, or graphviz")
	optimize    = flag.Bool("optimize", true, "run DCE and storage legalization before linking")
	versionFlag = flag.Bool("version", false, "print version")
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("thunderc version %s\n", version())
		return
	}

	procs := demoProcedures()
	if *optimize {
		for i, p := range procs {
			procs[i] = ir.NewProcedure(p.Name, thunder.Optimize(p.Buffer), p.ParameterTypes, p.ReturnType)
		}
	}

	var (
		out string
		err error
	)
	switch *format {
	case "glsl":
		out, err = thunder.Compile(procs, nil, glsl.DefaultOptions())
	case "assembly":
		out, err = renderAssembly(procs)
	case "graphviz":
		out, err = renderGraphviz(procs)
	default:
		err = fmt.Errorf("unknown -format %q: want glsl, assembly, or graphviz", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", *output, len(out))
		return
	}
	fmt.Print(out)
}

func renderAssembly(procs []*ir.Procedure) (string, error) {
	u := link.New()
	for _, p := range procs {
		u.Add(p)
	}
	linked, err := u.Link()
	if err != nil {
		return "", fmt.Errorf("link: %w", err)
	}
	var sb strings.Builder
	if err := link.WriteAssembly(&sb, linked); err != nil {
		return "", fmt.Errorf("assembly dump: %w", err)
	}
	return sb.String(), nil
}

func renderGraphviz(procs []*ir.Procedure) (string, error) {
	if len(procs) == 0 {
		return "", fmt.Errorf("no procedures to dump")
	}
	var sb strings.Builder
	if err := procs[0].Buffer.WriteGraphviz(&sb); err != nil {
		return "", fmt.Errorf("graphviz dump: %w", err)
	}
	return sb.String(), nil
}

// demoProcedures builds the procedures this command demonstrates: an
// integer sum, and the arithmetic-precedence expression
// (x+y*z) / ((((x+y*z)/(x-y))*z)*z).
func demoProcedures() []*ir.Procedure {
	sum := dsl.Record("sum", nil, ir.NoIndex, func() {
		x := dsl.ParamI32(0)
		y := dsl.ParamI32(1)
		dsl.RetValue(x.Add(y), dsl.TypeIndex(ir.KindI32))
	})

	arithmetic := dsl.Record("arithmetic", nil, ir.NoIndex, func() {
		x := dsl.ParamF32(0)
		y := dsl.ParamF32(1)
		z := dsl.ParamF32(2)
		yz := y.Mul(z)
		xyz := x.Add(yz)
		xy := x.Sub(y)
		result := xyz.Div(xyz.Div(xy).Mul(z).Mul(z))
		dsl.RetValue(result, dsl.TypeIndex(ir.KindF32))
	})

	return []*ir.Procedure{sum, arithmetic}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: thunderc [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  thunderc                   Print demo procedures as GLSL\n")
	fmt.Fprintf(os.Stderr, "  thunderc -o out.glsl       Write GLSL to a file\n")
	fmt.Fprintf(os.Stderr, "  thunderc -format assembly  Print the linked atom dump\n")
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mipskit/mipsasm/assembler"
	"github.com/mipskit/mipsasm/profile"
	"github.com/mipskit/mipsasm/renderer"
	"github.com/mipskit/mipsasm/tables"
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the assembler profile config file",
		Required: false,
	}
	OutputFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "File path for the machine-code output. Default: <input>.out",
		Required: false,
	}
	IntermediateFlag = &cli.PathFlag{
		Name:     "intermediate",
		Usage:    "File path for the expanded pass-one output. Default: <input>.int",
		Required: false,
	}
	SymbolDumpFlag = &cli.PathFlag{
		Name:     "symbol-dump",
		Usage:    "File path for the symbol table dump",
		Required: false,
	}
	RelocationDumpFlag = &cli.PathFlag{
		Name:     "relocation-dump",
		Usage:    "File path for the relocation table dump",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the diagnostic report. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for the diagnostic report. Default: stdout",
		Required: false,
	}
)

func CreateAssembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "assemble",
		Usage:       "Assembles a MIPS source file into machine code",
		Description: "Runs the two-pass assembler: pass one expands pseudo-instructions and binds labels, pass two emits machine words and the relocation table",
		ArgsUsage:   "<input.s>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			OutputFlag,
			IntermediateFlag,
			SymbolDumpFlag,
			RelocationDumpFlag,
			FormatFlag,
			ReportOutputPathFlag,
		},
	}
}

var AssembleCommand = CreateAssembleCommand(Assemble)

func Assemble(ctx *cli.Context) error {
	source := ctx.Args().First()
	if source == "" {
		return fmt.Errorf("missing input file argument")
	}

	prof := profile.Default()
	if path := ctx.Path(ProfileFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return fmt.Errorf("error loading profile: %w", err)
		}
	}
	format := ctx.String(FormatFlag.Name)
	if format == "" {
		format = prof.ReportFormat
	}

	intermediatePath := ctx.Path(IntermediateFlag.Name)
	if intermediatePath == "" {
		intermediatePath = replaceExt(source, ".int")
	}
	outputPath := ctx.Path(OutputFlag.Name)
	if outputPath == "" {
		outputPath = replaceExt(source, ".out")
	}

	symtbl, reltbl, issues, err := assemble(prof, source, intermediatePath, outputPath)
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	if path := ctx.Path(SymbolDumpFlag.Name); path != "" {
		if err := dumpTable(symtbl, path); err != nil {
			return fmt.Errorf("unable to write symbol dump: %w", err)
		}
	}
	if path := ctx.Path(RelocationDumpFlag.Name); path != "" {
		if err := dumpTable(reltbl, path); err != nil {
			return fmt.Errorf("unable to write relocation dump: %w", err)
		}
	}

	if err := writeReport(issues, format, ctx.Path(ReportOutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	if len(issues) > 0 {
		return fmt.Errorf("assembly finished with %d error(s)", len(issues))
	}
	return nil
}

func replaceExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}

// assemble runs both passes over the source file, leaving the expanded text
// at intermediatePath and the machine words at outputPath.
func assemble(prof *profile.AsmProfile, sourcePath, intermediatePath, outputPath string) (
	symtbl, reltbl *tables.SymbolTable, issues []*assembler.Issue, err error) {
	asm, err := assembler.New(prof.TextStart)
	if err != nil {
		return nil, nil, nil, err
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to open source: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	intermediate, err := os.OpenFile(intermediatePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to open intermediate file: %w", err)
	}
	defer func() {
		_ = intermediate.Close()
	}()

	output, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to open output file: %w", err)
	}
	defer func() {
		_ = output.Close()
	}()

	rewind := func() error {
		_, err := intermediate.Seek(0, 0)
		return err
	}
	return asm.Assemble(src, intermediate, output, rewind)
}

// writeReport outputs the diagnostics in the specified format.
func writeReport(issues []*assembler.Issue, format, outputPath string, prof *profile.AsmProfile) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text":
		rendererInstance = renderer.NewTextRenderer(prof)
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(issues, output)
}

func dumpTable(table *tables.SymbolTable, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open dump file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return table.Serialize(file)
}

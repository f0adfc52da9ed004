package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shapeshifter "github.com/alexjlockwood/ShapeShifter-sub004"
	"github.com/alexjlockwood/ShapeShifter-sub004/rasterizer"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

type Fix struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	From    string `index:"0" desc:"Path data or @file to morph from"`
	To      string `index:"1" desc:"Path data or @file to morph to"`
}

type Parse struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Input   string `index:"0" desc:"Path data or @file"`
}

type Frames struct {
	Verbose bool    `short:"v" desc:"Verbose logging"`
	N       int     `short:"n" default:"10" desc:"Number of frames"`
	Width   int     `short:"W" default:"256" desc:"Image width"`
	Height  int     `short:"H" default:"256" desc:"Image height"`
	Scale   float64 `short:"s" default:"1" desc:"Pixels per path unit"`
	Output  string  `short:"o" default:"frame.png" desc:"Output filename, the frame number is added before the extension"`
	From    string  `index:"0" desc:"Path data or @file to morph from"`
	To      string  `index:"1" desc:"Path data or @file to morph to"`
}

func main() {
	root := argp.NewCmd(&Fix{}, "Make two SVG paths morphable")
	root.AddCmd(&Parse{}, "parse", "Parse path data and print its commands")
	root.AddCmd(&Frames{}, "frames", "Render the frames of the morph between two paths")
	root.Parse()
	root.PrintHelp()
}

func setupLogger(verbose bool) (func(), error) {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}

// readPath parses path data given literally or, when prefixed by @, read from a file.
func readPath(arg string) (*shapeshifter.Path, error) {
	if strings.HasPrefix(arg, "@") {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
		arg = string(b)
	}
	return shapeshifter.ParsePath(arg)
}

func readPaths(from, to string) (*shapeshifter.Path, *shapeshifter.Path, error) {
	if from == "" || to == "" {
		return nil, nil, argp.ShowUsage
	}
	a, err := readPath(from)
	if err != nil {
		return nil, nil, fmt.Errorf("from: %w", err)
	}
	b, err := readPath(to)
	if err != nil {
		return nil, nil, fmt.Errorf("to: %w", err)
	}
	return a, b, nil
}

func (cmd *Fix) Run() error {
	sync, err := setupLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer sync()

	from, to, err := readPaths(cmd.From, cmd.To)
	if err != nil {
		return err
	}
	res := shapeshifter.AutoFix(from, to)
	fmt.Println(res.From)
	fmt.Println(res.To)
	if !res.Morphable() {
		for _, m := range res.Unresolved {
			zap.L().Warn("unresolved command mismatch", zap.Stringer("mismatch", m))
		}
		return fmt.Errorf("paths are not morphable: %d unresolved commands", len(res.Unresolved))
	}
	return nil
}

func (cmd *Parse) Run() error {
	sync, err := setupLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer sync()

	if cmd.Input == "" {
		return argp.ShowUsage
	}
	p, err := readPath(cmd.Input)
	if err != nil {
		return err
	}
	for i, s := range p.SubPaths() {
		closed := ""
		if s.Closed() {
			closed = ", closed"
		}
		fmt.Printf("subpath %d: %d commands%s, length %.3f, bounds %v\n", i, s.Len(), closed, s.Length(), s.Bounds())
		for j, c := range s.Commands() {
			fmt.Printf("  %d: %v\n", j, c)
		}
	}
	return nil
}

func (cmd *Frames) Run() error {
	sync, err := setupLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer sync()

	if cmd.N < 2 {
		return fmt.Errorf("need at least 2 frames")
	}
	ext := filepath.Ext(cmd.Output)
	w := rasterizer.WriterFor(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if w == nil {
		return fmt.Errorf("unknown image format %q", ext)
	}

	from, to, err := readPaths(cmd.From, cmd.To)
	if err != nil {
		return err
	}
	res := shapeshifter.AutoFix(from, to)
	if !res.Morphable() {
		return fmt.Errorf("paths are not morphable: %d unresolved commands", len(res.Unresolved))
	}

	base := strings.TrimSuffix(cmd.Output, ext)
	for i := 0; i < cmd.N; i++ {
		t := float64(i) / float64(cmd.N-1)
		p, err := shapeshifter.Interpolate(res.From, res.To, t)
		if err != nil {
			return err
		}
		img := rasterizer.Draw(p, cmd.Width, cmd.Height, cmd.Scale, colornames.Black, colornames.White)

		filename := fmt.Sprintf("%s%03d%s", base, i, ext)
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := w(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		zap.L().Info("wrote frame", zap.String("filename", filename), zap.Float64("t", t))
	}
	return nil
}

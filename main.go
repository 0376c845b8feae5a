package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/prospectus/deck"
	"github.com/ByLCY/prospectus/dsl"
	"github.com/ByLCY/prospectus/layout"
	"github.com/ByLCY/prospectus/renderer"
	canvasrenderer "github.com/ByLCY/prospectus/renderer/canvas"
	pptxrenderer "github.com/ByLCY/prospectus/renderer/pptx"
)

func main() {
	input := flag.String("in", "", "DSL 文件路径（留空使用内置文稿）")
	output := flag.String("out", "output/Panagora_Growth_Strategies.pptx", "输出文件路径")
	format := flag.String("format", "pptx", "输出格式：pptx 或 pdf")
	assets := flag.String("assets", "", "图片资源目录（留空取输入文件所在目录，否则为当前目录）")
	logo := flag.String("logo", "", "覆盖文稿的徽标路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到文稿内容的 JSON 数据")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	d, err := loadDeck(*input)
	if err != nil {
		log.Fatalf("加载文稿失败: %v", err)
	}
	if *logo != "" {
		d.Logo = *logo
	}

	baseDir := *assets
	if baseDir == "" {
		if *input != "" {
			baseDir = filepath.Dir(*input)
		} else {
			baseDir = "."
		}
	}

	var r renderer.Renderer
	switch *format {
	case "pptx":
		r = pptxrenderer.NewRenderer(baseDir)
	case "pdf":
		r = canvasrenderer.NewRenderer(baseDir)
	default:
		log.Fatalf("未知输出格式 %q（支持 pptx、pdf）", *format)
	}

	if err := run(d, *output, *debug, inputData, r); err != nil {
		log.Fatalf("生成演示文稿失败: %v", err)
	}
	fmt.Printf("已生成演示文稿：%s\n", *output)
}

// loadDeck 加载文稿：有输入文件则解析 .deck，否则回退到内置文稿。
func loadDeck(inputPath string) (*deck.Deck, error) {
	if inputPath == "" {
		return deck.Builtin(), nil
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("无法打开 DSL 文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	return dsl.Decode(doc)
}

// run 串联布局与渲染。
func run(d *deck.Deck, outputPath, debugPath string, data any, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}

	result, err := layout.Build(d, layout.BuildOptions{Data: data})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	out, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}

	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

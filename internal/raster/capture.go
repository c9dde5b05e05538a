package raster

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultScale 是打印清晰度的放大倍数。
const DefaultScale = 2.5

// Capture 是一次截图的结果：PNG 字节与像素尺寸。
type Capture struct {
	PNG      []byte
	WidthPx  int
	HeightPx int
}

// Capturer 用无头 Chromium 渲染预览 HTML 并截取 #resume-root。
type Capturer struct {
	// Scale 为 0 时使用 DefaultScale。
	Scale float64
}

// CapturePage 渲染 HTML 并截取简历画布。
//
// 截图前临时剥离阴影、外边距与祖先变换，并保证在成功与失败路径上
// 都恢复原样（页面是一次性的，但剥离逻辑保持与渲染端协定一致）。
func (c Capturer) CapturePage(html string) (_ *Capture, retErr error) {
	scale := c.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	defer func() {
		if retErr != nil {
			launch.Cleanup()
		}
	}()

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(browserURL).Timeout(90 * time.Second)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
		launch.Cleanup()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(60 * time.Second)

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             1024,
		Height:            1123,
		DeviceScaleFactor: scale,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set device scale: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	// 等待字体就绪，避免回退字体度量导致排版差异；等待失败不致命。
	_, _ = page.Timeout(5 * time.Second).Eval(`() => {
	  if (document && document.fonts && document.fonts.ready) {
	    return Promise.race([
	      document.fonts.ready.then(() => true),
	      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
	    ]);
	  }
	  return true;
	}`)

	// 剥离装饰样式，记录原值，离开前恢复。
	if _, err := page.Eval(stripDecorationScript); err != nil {
		return nil, fmt.Errorf("strip decoration: %w", err)
	}
	defer func() {
		if _, err := page.Eval(restoreDecorationScript); err != nil && retErr == nil {
			retErr = fmt.Errorf("restore decoration: %w", err)
		}
	}()

	element, err := page.Element("#resume-root")
	if err != nil {
		return nil, fmt.Errorf("locate resume root: %w", err)
	}

	data, err := element.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode capture size: %w", err)
	}

	return &Capture{PNG: data, WidthPx: cfg.Width, HeightPx: cfg.Height}, nil
}

const stripDecorationScript = `() => {
  const el = document.getElementById('resume-root');
  if (!el) return false;
  const parent = el.parentElement;
  window.__restoreStyles = {
    boxShadow: el.style.boxShadow,
    margin: el.style.margin,
    transform: parent ? parent.style.transform : ''
  };
  el.style.boxShadow = 'none';
  el.style.margin = '0';
  if (parent) parent.style.transform = 'none';
  return true;
}`

const restoreDecorationScript = `() => {
  const el = document.getElementById('resume-root');
  const saved = window.__restoreStyles;
  if (!el || !saved) return false;
  el.style.boxShadow = saved.boxShadow;
  el.style.margin = saved.margin;
  if (el.parentElement) el.parentElement.style.transform = saved.transform;
  delete window.__restoreStyles;
  return true;
}`

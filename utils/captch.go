package utils

import (
	"bytes"
	"fmt"
	"math/rand"

	svg "github.com/ajstarks/svgo"
)

// 生成指定长度的随机数字字符串
func generateRandomDigits(length int) string {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// 生成随机浅色，避免和文字撞色
func randomColor() string {
	return fmt.Sprintf("#%02x%02x%02x",
		rand.Intn(156)+100,
		rand.Intn(156)+100,
		rand.Intn(156)+100)
}

// GenerateSVG 生成SVG验证码，返回图片内容和明文code
// width和height是图片尺寸
func GenerateSVG(width, height int) ([]byte, string) {
	code := generateRandomDigits(4)

	var svgContent bytes.Buffer
	canvas := svg.New(&svgContent)
	canvas.Start(width, height)

	// 绘制背景
	canvas.Rect(0, 0, width, height, "fill:white")

	// 添加干扰线
	for i := 0; i < 6; i++ {
		x1 := rand.Intn(width)
		y1 := rand.Intn(height)
		x2 := rand.Intn(width)
		y2 := rand.Intn(height)
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:1", randomColor()))
	}

	// 添加干扰点
	for i := 0; i < 30; i++ {
		x := rand.Intn(width)
		y := rand.Intn(height)
		canvas.Circle(x, y, 1, fmt.Sprintf("fill:%s", randomColor()))
	}

	// 逐字符绘制，带随机偏移
	charWidth := width / 5
	for i, ch := range code {
		x := charWidth/2 + i*charWidth + rand.Intn(6)
		y := height/2 + 6 + rand.Intn(6)
		canvas.Text(x, y, string(ch),
			fmt.Sprintf("font-size:20px;fill:#333;font-family:monospace;text-anchor:middle;transform:rotate(%ddeg)", rand.Intn(20)-10))
	}

	canvas.End()
	return svgContent.Bytes(), code
}

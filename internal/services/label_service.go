package services

import (
	"Shelved/internal/config"
	"Shelved/internal/models"
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/color"
	"regexp"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// LabelService produces the printable QR labels. Each label encodes a deep
// link back to the box's detail view; scanning it lands on GET /?box=<id>.
type LabelService interface {
	BoxURL(box models.Box) string
	GenerateQR(box models.Box) ([]byte, error)
	LabelFilename(box models.Box) string
	PrintHTML(box models.Box) ([]byte, error)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Dark theme: light modules on a dark background, like the application UI.
var printTemplate = template.Must(template.New("label").Parse(`<html>
<head>
<title>Print Label - {{.Name}}</title>
<style>
  body { font-family: Arial, sans-serif; text-align: center; padding: 20px; background: #000; color: #fff; }
  h1 { margin-bottom: 10px; }
  img { border: 2px solid #fff; padding: 10px; background: #000; }
</style>
</head>
<body>
  <h1>{{.Name}}</h1>
  <p>{{.Location}} - {{.Category}}</p>
  <img src="{{.DataURL}}" alt="QR Code" />
  <p>{{.Description}}</p>
</body>
</html>
`))

type labelServiceImpl struct {
	baseURL string
	width   int
}

func NewLabelService(configuration *config.Configuration) LabelService {
	return &labelServiceImpl{
		baseURL: configuration.Label.BaseURL,
		width:   configuration.Label.Width,
	}
}

func (s *labelServiceImpl) BoxURL(box models.Box) string {
	return fmt.Sprintf("%s?box=%d", strings.TrimRight(s.baseURL, "/")+"/", box.ID)
}

func (s *labelServiceImpl) GenerateQR(box models.Box) ([]byte, error) {
	q, err := qrcode.New(s.BoxURL(box), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = color.White
	q.BackgroundColor = color.Black
	return q.PNG(s.width)
}

func (s *labelServiceImpl) LabelFilename(box models.Box) string {
	return whitespaceRe.ReplaceAllString(box.Name, "_") + "_QR.png"
}

func (s *labelServiceImpl) PrintHTML(box models.Box) ([]byte, error) {
	png, err := s.GenerateQR(box)
	if err != nil {
		return nil, err
	}
	data := struct {
		Name        string
		Location    string
		Category    string
		Description string
		DataURL     template.URL
	}{
		Name:        box.Name,
		Location:    box.Location,
		Category:    box.Category,
		Description: box.Description,
		DataURL:     template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

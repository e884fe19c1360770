// Package pages server-renders the public project detail page. All record
// text flows through html/template, so stored content can never inject
// markup.
package pages

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/tidewater-lab/site-backend/internal/projects/domain"
)

// PlaceholderImage is shown when a record has no images.
const PlaceholderImage = "/assets/placeholder.svg"

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("detail").Parse(detailTemplate))}
}

type detailView struct {
	Record     domain.ProjectRecord
	Primary    string
	HasImages  bool
	ImagesJSON template.JS
}

// Render writes the complete detail document for one record. The ordered
// image list is serialized into the page so the carousel runs client-side
// without a follow-up request.
func (r *Renderer) Render(w io.Writer, rec domain.ProjectRecord) error {
	refs := rec.Images
	if len(refs) == 0 {
		refs = []string{}
	}
	raw, err := json.Marshal(refs)
	if err != nil {
		return err
	}

	primary := rec.PrimaryImage()
	if primary == "" {
		primary = PlaceholderImage
	} else {
		primary = "/" + primary
	}

	return r.tmpl.Execute(w, detailView{
		Record:     rec,
		Primary:    primary,
		HasImages:  len(rec.Images) > 1,
		ImagesJSON: template.JS(raw),
	})
}

const detailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Record.Title}}</title>
<style>
  body { font-family: Georgia, serif; margin: 0; color: #1f2a33; }
  main { max-width: 860px; margin: 0 auto; padding: 2rem 1rem; }
  h1 { font-size: 2rem; margin-bottom: .25rem; }
  .date { color: #5b6b76; margin-bottom: 1.5rem; }
  .carousel { position: relative; }
  .carousel img { width: 100%; border-radius: 8px; display: block; }
  .carousel button { position: absolute; top: 50%; transform: translateY(-50%);
    background: rgba(31,42,51,.6); color: #fff; border: 0; font-size: 1.5rem;
    padding: .25rem .75rem; cursor: pointer; border-radius: 4px; }
  .carousel .prev { left: .5rem; }
  .carousel .next { right: .5rem; }
  .dots { text-align: center; margin-top: .5rem; }
  .dots span { display: inline-block; width: 10px; height: 10px; margin: 0 4px;
    border-radius: 50%; background: #c3ccd2; cursor: pointer; }
  .dots span.active { background: #1f2a33; }
  section { margin-top: 2rem; }
  h2 { font-size: 1.25rem; border-bottom: 1px solid #dde3e7; padding-bottom: .25rem; }
</style>
</head>
<body>
<main>
  <h1>{{.Record.Title}}</h1>
  <p class="date">{{.Record.Date}}</p>

  <div class="carousel">
    <img id="carousel-image" src="{{.Primary}}" alt="{{.Record.Title}}">
    {{if .HasImages}}
    <button class="prev" onclick="moveCarousel(-1)">&#10094;</button>
    <button class="next" onclick="moveCarousel(1)">&#10095;</button>
    {{end}}
  </div>
  <div class="dots" id="carousel-dots"></div>

  <section>
    <h2>Summary</h2>
    <p>{{.Record.Summary}}</p>
  </section>

  {{if .Record.Purpose}}
  <section>
    <h2>Purpose</h2>
    <p>{{.Record.Purpose}}</p>
  </section>
  {{end}}

  {{if .Record.Outcomes}}
  <section>
    <h2>Project Leaders</h2>
    <ul>
      {{range .Record.Outcomes}}<li>{{.}}</li>{{end}}
    </ul>
  </section>
  {{end}}

  <section>
    <h2>Results</h2>
    <p>{{.Record.Results}}</p>
  </section>
</main>
<script>
  var carouselImages = {{.ImagesJSON}};
  var carouselIndex = 0;

  function renderCarousel() {
    if (carouselImages.length === 0) return;
    document.getElementById('carousel-image').src = '/' + carouselImages[carouselIndex];
    var dots = document.getElementById('carousel-dots');
    dots.innerHTML = '';
    carouselImages.forEach(function (_, i) {
      var dot = document.createElement('span');
      if (i === carouselIndex) dot.className = 'active';
      dot.onclick = function () { carouselIndex = i; renderCarousel(); };
      dots.appendChild(dot);
    });
  }

  function moveCarousel(step) {
    var n = carouselImages.length;
    if (n === 0) return;
    carouselIndex = (carouselIndex + step + n) % n;
    renderCarousel();
  }

  renderCarousel();
</script>
</body>
</html>
`

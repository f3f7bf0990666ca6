package render

import (
	"bytes"
	"html/template"

	"github.com/gepres/portafolio-2025-sub000/internal/dates"
	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

// cvView is the template input: every bilingual field already resolved to
// the requested language so the template stays free of language logic.
type cvView struct {
	FullName string
	Title    string
	Email    string
	Phone    string
	Location string
	Summary  string
	Links    models.SocialLinks

	Education  []educationView
	Languages  []languageView
	SoftSkills []string
	Skills     []skillView
	Experience []experienceView
}

type educationView struct {
	Degree      string
	Institution string
	Period      string
}

type languageView struct {
	Language string
	Level    string
}

type skillView struct {
	Name     string
	Category string
	Level    int
}

type experienceView struct {
	Company      string
	Position     string
	Period       string
	Duration     string
	Description  string
	Achievements []string
	Technologies []string
}

func buildView(cv *models.CVData, lang models.Lang) cvView {
	v := cvView{
		FullName: cv.PersonalInfo.FullName,
		Title:    cv.PersonalInfo.Title.Resolve(lang),
		Email:    cv.PersonalInfo.Email,
		Phone:    cv.PersonalInfo.Phone,
		Location: cv.PersonalInfo.Location.Resolve(lang),
		Summary:  cv.PersonalInfo.Summary.Resolve(lang),
		Links:    cv.PersonalInfo.SocialLinks,
	}

	for _, e := range cv.Education {
		v.Education = append(v.Education, educationView{
			Degree:      e.Degree.Resolve(lang),
			Institution: e.Institution.Resolve(lang),
			Period:      dates.FormatForDisplay(e.StartDate) + " - " + dates.FormatForDisplay(e.EndDate),
		})
	}
	for _, l := range cv.Languages {
		v.Languages = append(v.Languages, languageView{
			Language: l.Language.Resolve(lang),
			Level:    l.Level.Resolve(lang),
		})
	}
	for _, s := range cv.SoftSkills {
		v.SoftSkills = append(v.SoftSkills, s.Name.Resolve(lang))
	}
	for _, s := range cv.TechnicalSkills {
		v.Skills = append(v.Skills, skillView{Name: s.Name, Category: s.Category, Level: s.Level})
	}
	for _, e := range cv.Experience {
		v.Experience = append(v.Experience, experienceView{
			Company:      e.Company,
			Position:     e.Position.Resolve(lang),
			Period:       dates.FormatForDisplay(e.StartDate) + " - " + dates.FormatForDisplay(e.EndDate),
			Duration:     dates.DurationLabel(e.StartDate, e.EndDate),
			Description:  e.Description.Resolve(lang),
			Achievements: e.Achievements,
			Technologies: e.Technologies,
		})
	}
	return v
}

var cvTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 0; padding: 32px 40px; font-size: 12px; }
  h1 { font-size: 24px; margin: 0; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #d1d5db; padding-bottom: 4px; margin: 18px 0 8px; }
  .subtitle { color: #4b5563; font-size: 14px; margin: 2px 0 8px; }
  .meta { color: #6b7280; font-size: 11px; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-head strong { font-size: 12px; }
  .tags span { display: inline-block; background: #f3f4f6; border-radius: 3px; padding: 1px 6px; margin: 1px 3px 1px 0; font-size: 10px; }
  ul { margin: 4px 0 0 16px; padding: 0; }
  li { margin-bottom: 2px; }
</style>
</head>
<body>
  <h1>{{.FullName}}</h1>
  <p class="subtitle">{{.Title}}</p>
  <p class="meta">
    {{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}
    {{if .Links.Github}} &middot; {{.Links.Github}}{{end}}{{if .Links.Linkedin}} &middot; {{.Links.Linkedin}}{{end}}
  </p>
  {{if .Summary}}<p>{{.Summary}}</p>{{end}}

  {{if .Experience}}
  <h2>Experiencia</h2>
  {{range .Experience}}
  <div class="entry">
    <div class="entry-head"><strong>{{.Position}} &mdash; {{.Company}}</strong><span class="meta">{{.Period}}{{if .Duration}} ({{.Duration}}){{end}}</span></div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    {{if .Achievements}}<ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .Technologies}}<p class="tags">{{range .Technologies}}<span>{{.}}</span>{{end}}</p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if .Skills}}
  <h2>Habilidades</h2>
  <p class="tags">{{range .Skills}}<span>{{.Name}}</span>{{end}}</p>
  {{end}}

  {{if .SoftSkills}}
  <h2>Competencias</h2>
  <p class="tags">{{range .SoftSkills}}<span>{{.}}</span>{{end}}</p>
  {{end}}

  {{if .Education}}
  <h2>Educación</h2>
  {{range .Education}}
  <div class="entry">
    <div class="entry-head"><strong>{{.Degree}}</strong><span class="meta">{{.Period}}</span></div>
    <p>{{.Institution}}</p>
  </div>
  {{end}}
  {{end}}

  {{if .Languages}}
  <h2>Idiomas</h2>
  {{range .Languages}}<p class="entry">{{.Language}} &mdash; {{.Level}}</p>{{end}}
  {{end}}
</body>
</html>`))

// RenderHTML produces the CV document markup for one language.
func RenderHTML(cv *models.CVData, lang models.Lang) (string, error) {
	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, buildView(cv, lang)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

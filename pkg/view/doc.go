// Package view renders html/template views and markdown pages from an fs.FS
// and hosts template extensions such as the date filter.
//
// # Architecture
//
//   - Engine: parses and caches templates, implements the RegisterFilter and
//     RegisterInstanceMethod hooks
//   - Instance: the value templates execute with; .Data holds the caller's
//     data and .Call invokes registered instance methods
//   - Date: a templ component for templ-based views
//
// # Usage
//
//	//go:embed templates
//	var templates embed.FS
//
//	sub, _ := fs.Sub(templates, "templates")
//	engine := view.New(sub)
//
//	if _, err := datefilter.Install(engine, engine); err != nil {
//		return err
//	}
//
//	err := engine.Render(ctx, w, "post.html", post)
//
// A view can use the filter or the instance method:
//
//	<time>{{ .Data.PublishedAt | date "DD MMMM YYYY" }}</time>
//	<small>{{ .Call "$date" .Data.PublishedAt "for humans" (dateOptions "locale" .Locale) }}</small>
//
// # Markdown Pages
//
// Pages are markdown files with optional YAML frontmatter. The body is a
// text/template executed before markdown conversion; the resulting HTML is
// sanitized with bluemonday and injected into a layout as .Content:
//
//	---
//	title: Changelog
//	---
//	Released {{ .Data.ReleasedAt | date "for humans" (dateOptions "addSuffix" true) }}.
//
//	page, err := engine.RenderPage(ctx, "base.html", "changelog.md", release)
//
// # Directory Layout
//
//	views/     html/template views (WithViewDir)
//	pages/     markdown pages (WithPageDir)
//	layouts/   page layouts (WithLayoutDir)
//
// # Thread Safety
//
// Engine is safe for concurrent use. Parsed templates are cached behind a
// RWMutex; registering a filter drops the caches so templates are parsed again
// with the new function set.
package view

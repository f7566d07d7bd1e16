// Package doxcv generates résumé artifacts from a Doxygen-flavored "DOX"
// CV document: a typeset PDF via a LaTeX template and an external engine,
// and the marker-delimited sections of a static HTML résumé page.
//
// # Quick Start
//
// PDF path:
//
//	gen := doxcv.NewGenerator()
//	result, err := gen.Generate(ctx, doxcv.GenerateInput{
//	    Source:   doxText,
//	    Template: texTemplate,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", result.PDF, 0644)
//
// HTML path:
//
//	upd := doxcv.NewUpdater()
//	result, err := upd.Update(ctx, doxcv.UpdateInput{
//	    Source: doxText,
//	    HTML:   pageHTML,
//	})
//
// # Pipeline
//
// Both paths share three stateless stages over strings:
//
//  1. Section extraction (@section blocks, @mainpage header)
//  2. Record building (contact, skills, certifications, languages,
//     education, work experience)
//  3. Rendering (LaTeX macro invocations or HTML fragments, with
//     target-specific escaping)
//
// The PDF path then fills the template's @@NAME@@-style placeholders and
// runs the typesetting engine twice in a scratch directory. The HTML path
// splices fragments between <!-- X_START --> / <!-- X_END --> marker pairs
// and reports missing pairs as non-fatal warnings.
//
// # Parsing model
//
// The source grammar is specific to one résumé dialect. Builders match
// known line shapes and silently degrade on anything else: a non-matching
// line renders as best-effort verbatim text or is dropped, never raised as
// an error. Missing sections render as empty fragments.
//
// # External engine
//
// PDF generation shells out to a pdflatex-compatible engine. The engine
// must exit zero on both passes and leave a PDF in the scratch directory;
// on failure the error carries the tail of the engine output and log. Use
// GenerateInput.TeXOnly to inspect the filled template without compiling.
package doxcv

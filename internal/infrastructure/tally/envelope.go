package tally

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// requestTypeExport is the TALLYREQUEST header for export exchanges; the
// gateway speaks only this request type in this subsystem.
const requestTypeExport = "Export"

// envelopeTemplate wraps a body fragment for the Tally XML gateway.
const envelopeTemplate = `<ENVELOPE>
  <HEADER>
    <TALLYREQUEST>%s</TALLYREQUEST>
  </HEADER>
  <BODY>
    %s
  </BODY>
</ENVELOPE>`

// buildEnvelope wraps a body fragment in a Tally XML envelope.
func buildEnvelope(requestType, body string) string {
	return fmt.Sprintf(envelopeTemplate, requestType, body)
}

// ExportRequest describes one collection export from the gateway.
type ExportRequest struct {
	// Collection is the TDL collection name (e.g. "Stock Items")
	Collection string
	// ReportName is the Tally report/export name sent on the wire
	ReportName string
	// Filters holds optional key/value filter pairs; keys are uppercased
	Filters map[string]string
	// FromDate scopes the export start (YYYYMMDD), optional
	FromDate string
	// ToDate scopes the export end (YYYYMMDD), optional
	ToDate string
}

// buildRequestDesc renders the REQUESTDESC fragment for an export request,
// embedding the optional date range, filters and company scope.
func buildRequestDesc(cfg *ConnectionConfig, req ExportRequest) string {
	var b strings.Builder
	b.WriteString("<REPORTNAME>" + escapeXML(req.ReportName) + "</REPORTNAME>")
	if req.FromDate != "" {
		b.WriteString("<STATICVARIABLES><SVFROMDATE>" + escapeXML(req.FromDate) + "</SVFROMDATE></STATICVARIABLES>")
	}
	if req.ToDate != "" {
		b.WriteString("<STATICVARIABLES><SVTODATE>" + escapeXML(req.ToDate) + "</SVTODATE></STATICVARIABLES>")
	}
	if len(req.Filters) > 0 {
		keys := make([]string, 0, len(req.Filters))
		for k := range req.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			tag := strings.ToUpper(k)
			b.WriteString("<" + tag + ">" + escapeXML(req.Filters[k]) + "</" + tag + ">")
		}
	}
	if cfg.CompanyName != "" {
		b.WriteString("<STATICVARIABLES><SVCURRENTCOMPANY>" + escapeXML(cfg.CompanyName) + "</SVCURRENTCOMPANY></STATICVARIABLES>")
	}
	return b.String()
}

// buildExportEnvelope renders the complete export envelope for a request.
func buildExportEnvelope(cfg *ConnectionConfig, req ExportRequest) string {
	body := "<EXPORT><EXPORTDATA><REQUESTDESC>" + buildRequestDesc(cfg, req) + "</REQUESTDESC></EXPORTDATA></EXPORT>"
	return buildEnvelope(requestTypeExport, body)
}

// escapeXML escapes a text value for embedding in an XML fragment.
func escapeXML(s string) string {
	var b bytes.Buffer
	// EscapeText only fails on writer errors; bytes.Buffer never errors.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// ---------------------------------------------------------------------------
// Response documents
// ---------------------------------------------------------------------------

// Document is a parsed gateway response. The gateway nests exported records
// at varying depths depending on the report, so records are located by tag
// name anywhere in the document rather than by a fixed path.
type Document struct {
	raw []byte
}

// parseDocument validates that raw is well-formed XML and wraps it for
// element collection.
func parseDocument(raw []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return &Document{raw: raw}, nil
}

// collectElements decodes every element named tag anywhere in the document
// into values of type T.
func collectElements[T any](doc *Document, tag string) ([]T, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc.raw))
	var out []T
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != tag {
			continue
		}
		var v T
		if err := dec.DecodeElement(&v, &start); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

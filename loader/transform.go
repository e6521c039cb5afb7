package loader

import (
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/tobich/oasreq/model"
)

// transform maps the libopenapi high-level model into the package's own
// immutable document model.
func transform(version string, doc *v3.Document) *model.Specification {
	spec := &model.Specification{
		OpenAPI:      version,
		Info:         transformInfo(doc.Info),
		Servers:      transformServers(doc.Servers),
		Tags:         transformTags(doc.Tags),
		ExternalDocs: transformExternalDoc(doc.ExternalDocs),
	}

	// An empty paths mapping stays nil so re-serialized documents load back
	// to an equal Specification.
	if doc.Paths != nil && doc.Paths.PathItems != nil && doc.Paths.PathItems.Len() > 0 {
		spec.Paths = make(map[string]model.PathItem, doc.Paths.PathItems.Len())
		for pathStr, item := range doc.Paths.PathItems.FromOldest() {
			spec.Paths[pathStr] = transformPathItem(item)
		}
	}

	return spec
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	out := model.Info{
		Title:          info.Title,
		Description:    info.Description,
		TermsOfService: info.TermsOfService,
		Version:        info.Version,
	}
	if info.Contact != nil {
		out.Contact = &model.Contact{
			Name:  info.Contact.Name,
			URL:   info.Contact.URL,
			Email: info.Contact.Email,
		}
	}
	if info.License != nil {
		out.License = &model.License{
			Name: info.License.Name,
			URL:  info.License.URL,
		}
	}
	return out
}

func transformServers(servers []*v3.Server) []model.Server {
	var result []model.Server
	for _, s := range servers {
		server := model.Server{
			URL:         s.URL,
			Description: s.Description,
		}
		if s.Variables != nil && s.Variables.Len() > 0 {
			server.Variables = make(map[string]model.ServerVariable, s.Variables.Len())
			for name, v := range s.Variables.FromOldest() {
				server.Variables[name] = model.ServerVariable{
					Enum:        v.Enum,
					Default:     v.Default,
					Description: v.Description,
				}
			}
		}
		result = append(result, server)
	}
	return result
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, t := range tags {
		result = append(result, model.Tag{
			Name:         t.Name,
			Description:  t.Description,
			ExternalDocs: transformExternalDoc(t.ExternalDocs),
		})
	}
	return result
}

func transformExternalDoc(doc *base.ExternalDoc) *model.ExternalDoc {
	if doc == nil {
		return nil
	}
	return &model.ExternalDoc{
		URL:         doc.URL,
		Description: doc.Description,
	}
}

func transformPathItem(item *v3.PathItem) model.PathItem {
	return model.PathItem{
		Summary:     item.Summary,
		Description: item.Description,
		Get:         transformOperation(item.Get),
		Put:         transformOperation(item.Put),
		Post:        transformOperation(item.Post),
		Delete:      transformOperation(item.Delete),
		Options:     transformOperation(item.Options),
		Head:        transformOperation(item.Head),
		Patch:       transformOperation(item.Patch),
		Trace:       transformOperation(item.Trace),
		Servers:     transformServers(item.Servers),
		Parameters:  transformParameters(item.Parameters),
	}
}

func transformOperation(op *v3.Operation) *model.Operation {
	if op == nil {
		return nil
	}
	return &model.Operation{
		Tags:         op.Tags,
		Summary:      op.Summary,
		Description:  op.Description,
		ExternalDocs: transformExternalDoc(op.ExternalDocs),
		OperationID:  op.OperationId,
		Parameters:   transformParameters(op.Parameters),
		Deprecated:   boolValue(op.Deprecated),
		Servers:      transformServers(op.Servers),
	}
}

func transformParameters(params []*v3.Parameter) []model.Parameter {
	var result []model.Parameter
	for _, p := range params {
		result = append(result, model.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    boolValue(p.Required),
			Deprecated:  p.Deprecated,
		})
	}
	return result
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

package linker

import (
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Plan computes the LinkSpecs for profile in table order. It performs no I/O.
// The profile is used verbatim as a path segment.
func Plan(p *paths.Paths, profile string, links []config.LinkEntry) []types.LinkSpec {
	specs := make([]types.LinkSpec, 0, len(links))
	for _, link := range links {
		var source string
		switch link.Scope {
		case config.ScopeProfile:
			source = p.InstallPath(profile, link.Name)
		default:
			source = p.InstallPath(link.Name)
		}
		specs = append(specs, types.LinkSpec{
			Source: source,
			Target: p.HomePath(link.Name),
		})
	}
	return specs
}

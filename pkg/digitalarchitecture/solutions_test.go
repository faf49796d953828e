package digitalarchitecture

import (
	"context"
	"testing"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
)

func TestSolutionManagerEndpoints(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewSolutionManager(client)

	ref := func(name string) metadata.ReferenceableProperties {
		return metadata.ReferenceableProperties{QualifiedName: name}
	}

	runEndpointCases(t, fake, []endpointCase{
		{"create supply chain", "POST", "/information-supply-chains", func(ctx context.Context) error {
			_, err := m.CreateInformationSupplyChain(ctx, testUser, &metadata.InformationSupplyChainProperties{
				ReferenceableProperties: ref("InformationSupplyChain:clinical-trials"),
				Purposes:                []string{"treatment efficacy"},
			})
			return err
		}},
		{"update supply chain", "POST", "/information-supply-chains/isc-1/update?isMergeUpdate=true", func(ctx context.Context) error {
			return m.UpdateInformationSupplyChain(ctx, testUser, "isc-1", true, &metadata.InformationSupplyChainProperties{Scope: "global"})
		}},
		{"remove supply chain", "POST", "/information-supply-chains/isc-1/delete", func(ctx context.Context) error {
			return m.RemoveInformationSupplyChain(ctx, testUser, "isc-1")
		}},
		{"find supply chains", "POST", "/information-supply-chains/by-search-string?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.FindInformationSupplyChains(ctx, testUser, "clinical", 0, 10)
			return err
		}},
		{"supply chains by name", "POST", "/information-supply-chains/by-name?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.GetInformationSupplyChainsByName(ctx, testUser, "Clinical trials", 0, 10)
			return err
		}},
		{"supply chain by guid", "GET", "/information-supply-chains/isc-1", func(ctx context.Context) error {
			_, err := m.GetInformationSupplyChainByGUID(ctx, testUser, "isc-1")
			return err
		}},
		{"create blueprint", "POST", "/solution-blueprints", func(ctx context.Context) error {
			_, err := m.CreateSolutionBlueprint(ctx, testUser, &metadata.SolutionBlueprintProperties{ReferenceableProperties: ref("SolutionBlueprint:hospital")})
			return err
		}},
		{"update blueprint", "POST", "/solution-blueprints/bp-1/update?isMergeUpdate=false", func(ctx context.Context) error {
			return m.UpdateSolutionBlueprint(ctx, testUser, "bp-1", false, &metadata.SolutionBlueprintProperties{Version: "2"})
		}},
		{"remove blueprint", "POST", "/solution-blueprints/bp-1/delete", func(ctx context.Context) error {
			return m.RemoveSolutionBlueprint(ctx, testUser, "bp-1")
		}},
		{"find blueprints", "POST", "/solution-blueprints/by-search-string?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.FindSolutionBlueprints(ctx, testUser, ".*", 0, 10)
			return err
		}},
		{"blueprint by guid", "GET", "/solution-blueprints/bp-1", func(ctx context.Context) error {
			_, err := m.GetSolutionBlueprintByGUID(ctx, testUser, "bp-1")
			return err
		}},
		{"create component", "POST", "/solution-components", func(ctx context.Context) error {
			_, err := m.CreateSolutionComponent(ctx, testUser, &metadata.SolutionComponentProperties{
				ReferenceableProperties: ref("SolutionComponent:onboarding"),
				SolutionComponentType:   "Automated Process",
			})
			return err
		}},
		{"update component", "POST", "/solution-components/sc-1/update?isMergeUpdate=true", func(ctx context.Context) error {
			return m.UpdateSolutionComponent(ctx, testUser, "sc-1", true, &metadata.SolutionComponentProperties{Version: "1.1"})
		}},
		{"remove component", "POST", "/solution-components/sc-1/delete", func(ctx context.Context) error {
			return m.RemoveSolutionComponent(ctx, testUser, "sc-1")
		}},
		{"find components", "POST", "/solution-components/by-search-string?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.FindSolutionComponents(ctx, testUser, "onboard", 0, 10)
			return err
		}},
		{"component by guid", "GET", "/solution-components/sc-1", func(ctx context.Context) error {
			_, err := m.GetSolutionComponentByGUID(ctx, testUser, "sc-1")
			return err
		}},
		{"link component to blueprint", "POST", "/solution-blueprints/bp-1/solution-components/sc-1", func(ctx context.Context) error {
			return m.LinkSolutionComponentToBlueprint(ctx, testUser, "bp-1", "sc-1", &metadata.SolutionCompositionProperties{Role: "ingest"})
		}},
		{"detach component from blueprint", "POST", "/solution-blueprints/bp-1/solution-components/sc-1/remove", func(ctx context.Context) error {
			return m.DetachSolutionComponentFromBlueprint(ctx, testUser, "bp-1", "sc-1")
		}},
		{"link subcomponent", "POST", "/solution-components/sc-1/subcomponents/sc-2", func(ctx context.Context) error {
			return m.LinkSubcomponent(ctx, testUser, "sc-1", "sc-2", nil)
		}},
		{"detach subcomponent", "POST", "/solution-components/sc-1/subcomponents/sc-2/remove", func(ctx context.Context) error {
			return m.DetachSubcomponent(ctx, testUser, "sc-1", "sc-2")
		}},
		{"link wire", "POST", "/solution-components/sc-1/wired-to/sc-3", func(ctx context.Context) error {
			return m.LinkSolutionLinkingWire(ctx, testUser, "sc-1", "sc-3", &metadata.SolutionLinkingWireProperties{Label: "patient data"})
		}},
		{"detach wire", "POST", "/solution-components/sc-1/wired-to/sc-3/remove", func(ctx context.Context) error {
			return m.DetachSolutionLinkingWire(ctx, testUser, "sc-1", "sc-3")
		}},
		{"link actor", "POST", "/actor-roles/ar-1/solution-components/sc-1", func(ctx context.Context) error {
			return m.LinkSolutionActor(ctx, testUser, "ar-1", "sc-1", &metadata.SolutionActorProperties{Role: "operator"})
		}},
		{"detach actor", "POST", "/actor-roles/ar-1/solution-components/sc-1/remove", func(ctx context.Context) error {
			return m.DetachSolutionActor(ctx, testUser, "ar-1", "sc-1")
		}},
	})
}

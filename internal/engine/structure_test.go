package engine

import (
	"encoding/json"
	"testing"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

func TestStructureBuckets(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Employer/Controllers/FooController.php":           "",
		"app/Employer/Repositories/FooRepository.php":          "",
		"app/Employer/Repositories/FooRepositoryInterface.php": "",
	})
	eng := newTestEngine(t, root, nil)

	result, err := eng.Structure("Employer")
	if err != nil {
		t.Fatalf("Structure failed: %v", err)
	}

	if len(result.Controllers) != 1 || result.Controllers[0] != "app/Employer/Controllers/FooController.php" {
		t.Errorf("Unexpected controllers: %v", result.Controllers)
	}
	if len(result.Repositories) != 1 || result.Repositories[0] != "app/Employer/Repositories/FooRepository.php" {
		t.Errorf("Repositories must exclude the interface: %v", result.Repositories)
	}
	if len(result.RepositoryInterfaces) != 1 {
		t.Errorf("Unexpected repository interfaces: %v", result.RepositoryInterfaces)
	}
	if result.TotalFiles != 3 {
		t.Errorf("Expected total_files 3, got %d", result.TotalFiles)
	}
}

func TestStructureNonExclusiveBuckets(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Core/Services/BillingServiceTest.php": "",
	})
	eng := newTestEngine(t, root, nil)

	result, err := eng.Structure("Core")
	if err != nil {
		t.Fatalf("Structure failed: %v", err)
	}

	if len(result.Services) != 1 {
		t.Errorf("Expected file in services bucket: %v", result.Services)
	}
	if len(result.Tests) != 1 {
		t.Errorf("Expected file in tests bucket: %v", result.Tests)
	}
	if result.TotalFiles != 1 {
		t.Errorf("Expected total_files 1, got %d", result.TotalFiles)
	}
}

func TestStructureUnknownDomain(t *testing.T) {
	eng := newTestEngine(t, t.TempDir(), nil)

	_, err := eng.Structure("Payments")
	expectKind(t, err, types.KindUsage)
}

func TestStructureMissingDomainDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Core/Models/Order.php": "",
	})
	eng := newTestEngine(t, root, nil)

	_, err := eng.Structure("Dealer")
	expectKind(t, err, types.KindNotFound)
}

func TestStructureIdempotent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Customer/Controllers/ProfileController.php": "",
		"app/Customer/Models/Profile.php":                "",
	})
	eng := newTestEngine(t, root, nil)

	first, err := eng.Structure("Customer")
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	second, err := eng.Structure("Customer")
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("Repeated calls differ:\n%s\n%s", a, b)
	}
}

func TestListDomainsCountsAllFour(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Core/Models/Order.php":                     "",
		"app/Employer/Controllers/OrderController.php":  "",
		"app/Employer/Repositories/OrderRepository.php": "",
	})
	eng := newTestEngine(t, root, nil)

	list, err := eng.ListDomains()
	if err != nil {
		t.Fatalf("ListDomains failed: %v", err)
	}
	if len(list.Domains) != 4 {
		t.Fatalf("Expected 4 domains, got %d", len(list.Domains))
	}

	counts := map[string]int{}
	for _, d := range list.Domains {
		counts[d.Domain] = d.Files
	}
	if counts["Core"] != 1 || counts["Employer"] != 2 || counts["Dealer"] != 0 || counts["Customer"] != 0 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestListModelsRecords(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/Dealer/Models/Car.php":          "",
		"app/Dealer/Entities/CarOption.php":  "",
		"app/Dealer/Services/CarService.php": "",
	})
	eng := newTestEngine(t, root, nil)

	listing, err := eng.ListModels("Dealer")
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}

	if listing.Total != 2 {
		t.Fatalf("Expected 2 records, got %d", listing.Total)
	}
	// Paths come back in sorted order: Entities before Models.
	first, second := listing.Files[0], listing.Files[1]
	if first.Name != "CarOption" || first.Domain != "Dealer" {
		t.Errorf("Unexpected record: %+v", first)
	}
	if second.RelativePath != "app/Dealer/Models/Car.php" {
		t.Errorf("Unexpected relative path %q", second.RelativePath)
	}
	if !hasCat(second.Categories, types.CategoryModel) {
		t.Errorf("Expected model category, got %v", second.Categories)
	}
}

func hasCat(cats []types.Category, want types.Category) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}

func TestListControllersDomainValidation(t *testing.T) {
	eng := newTestEngine(t, t.TempDir(), nil)

	for _, domain := range []string{"Core", "Customer", "Dealer", "Employer"} {
		if _, err := eng.ListControllers(domain); err != nil {
			t.Errorf("ListControllers(%s) failed: %v", domain, err)
		}
	}
	if _, err := eng.ListControllers("core"); err == nil {
		t.Error("Expected usage error for lowercase domain")
	}
}

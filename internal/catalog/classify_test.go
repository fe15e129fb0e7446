package catalog

import (
	"testing"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

func TestMatchesSubstringRules(t *testing.T) {
	cases := []struct {
		path string
		cat  types.Category
		want bool
	}{
		{"/app/Core/Controllers/OrderController.php", types.CategoryController, true},
		{"/app/Core/Repositories/OrderRepository.php", types.CategoryRepository, true},
		{"/app/Core/Repositories/OrderRepositoryInterface.php", types.CategoryRepository, false},
		{"/app/Core/Repositories/OrderRepositoryInterface.php", types.CategoryRepositoryInterface, true},
		{"/app/Core/Transformers/OrderTransformer.php", types.CategoryTransformer, true},
		{"/app/Core/Requests/StoreOrderRequest.php", types.CategoryRequest, true},
		{"/app/Core/Models/Order.php", types.CategoryModel, true},
		{"/app/Core/Entities/OrderLine.php", types.CategoryEntity, true},
		{"/app/Core/Services/OrderService.php", types.CategoryService, true},
		{"/app/Core/Exceptions/OrderNotFoundException.php", types.CategoryException, true},
		{"/tests/Unit/OrderServiceTest.php", types.CategoryTest, true},
		{"/tests/Unit/OrderService.php", types.CategoryTest, false},
		{"/resources/js/components/Button.vue", types.CategoryComponent, true},
		{"/resources/js/pages/orders/Overview.vue", types.CategoryPage, true},
		{"/resources/js/pages/orders/Overview.vue", types.CategoryComponent, false},
		{"/app/Core/Models/Order.php", types.CategoryController, false},
	}

	for _, tc := range cases {
		if got := Matches(tc.path, tc.cat); got != tc.want {
			t.Errorf("Matches(%q, %s) = %v, want %v", tc.path, tc.cat, got, tc.want)
		}
	}
}

func TestCategoriesNonExclusive(t *testing.T) {
	cats := Categories("/app/Core/Services/OrderServiceTest.php")

	if !hasCategory(cats, types.CategoryService) {
		t.Error("Expected service category")
	}
	if !hasCategory(cats, types.CategoryTest) {
		t.Error("Expected test category")
	}
}

func TestCategoriesUnknown(t *testing.T) {
	cats := Categories("/app/Core/Helpers/helpers.php")
	if len(cats) != 1 || cats[0] != types.CategoryUnknown {
		t.Errorf("Expected [unknown], got %v", cats)
	}
}

func TestDomainOf(t *testing.T) {
	cases := []struct {
		ref  string
		want string
	}{
		{"/srv/app/app/Employer/Controllers/OrderController.php", "Employer"},
		{`App\Customer\Controllers\ProfileController@show`, "Customer"},
		{"/srv/app/app/Core/Models/Order.php", "Core"},
		{"/srv/app/app/Shared/helpers.php", ""},
		{"/srv/app/app/CustomerService/thing.php", ""},
	}

	for _, tc := range cases {
		if got := DomainOf(tc.ref); got != tc.want {
			t.Errorf("DomainOf(%q) = %q, want %q", tc.ref, got, tc.want)
		}
	}
}

func TestNewFileRecord(t *testing.T) {
	rec := NewFileRecord("/srv/app/app/Dealer/Controllers/CarController.php", "/srv/app")

	if rec.RelativePath != "app/Dealer/Controllers/CarController.php" {
		t.Errorf("Unexpected relative path %q", rec.RelativePath)
	}
	if rec.Domain != "Dealer" {
		t.Errorf("Expected domain Dealer, got %q", rec.Domain)
	}
	if rec.Name != "CarController" {
		t.Errorf("Expected name CarController, got %q", rec.Name)
	}
	if !hasCategory(rec.Categories, types.CategoryController) {
		t.Error("Expected controller category")
	}
}

func hasCategory(cats []types.Category, want types.Category) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}

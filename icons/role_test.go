package icons

import (
	"strings"
	"testing"
)

func TestRoleCatalogCoversEveryRole(t *testing.T) {
	defs := RoleCatalog()
	if len(defs) == 0 {
		t.Fatal("expected role catalog to include definitions")
	}

	seen := make(map[Role]struct{})
	for i, def := range defs {
		if def.Role != Role(i) {
			t.Errorf("role %s out of order at %d", def.Name, i)
		}
		if _, ok := seen[def.Role]; ok {
			t.Errorf("duplicate role in catalog: %s", def.Name)
		}
		seen[def.Role] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("role %d missing name", def.Role)
		}
	}
	for role := range roleIconNames {
		if _, ok := seen[role]; !ok {
			t.Errorf("icon mapping for %d exists but role is missing from catalog", role)
		}
	}
}

func TestRoleIconsAreCataloged(t *testing.T) {
	for _, def := range RoleCatalog() {
		name, ok := RoleIcon(def.Role)
		if !ok {
			t.Fatalf("missing icon mapping for %s", def.Name)
		}
		if _, err := Lookup(name); err != nil {
			t.Errorf("role %s maps to %s: %v", def.Name, name, err)
		}
	}
}

func TestRoleIconOrDefault(t *testing.T) {
	if got := RoleIconOrDefault(RoleClose); got != "x" {
		t.Fatalf("close = %q, want x", got)
	}
	if got := RoleIconOrDefault(Role(999)); got != "circle" {
		t.Fatalf("unknown role = %q, want circle", got)
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleLogOut.String(); got != "Log Out" {
		t.Fatalf("String() = %q", got)
	}
	if got := Role(-1).String(); got != "Role(-1)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRenderRole(t *testing.T) {
	got := RenderRole(RoleMenu, Properties{}).String()
	if got != Menu(Properties{}).String() {
		t.Fatalf("menu role rendered %s", got)
	}
	fallback := RenderRole(Role(999), Properties{}).String()
	if fallback != Circle(Properties{}).String() {
		t.Fatalf("unknown role rendered %s", fallback)
	}
}

package icons

import "strconv"

// Role names the intent behind an icon so callers do not pick glyphs directly.
type Role int

const (
	RoleGeneric Role = iota
	RoleClose
	RoleMenu
	RoleExpand
	RoleCollapse
	RoleSearch
	RoleSettings
	RoleNotification
	RoleProfile
	RoleLogOut
	RoleSuccess
	RoleWarning
	RoleError
	RoleInfo
	RoleAdd
	RoleRemove
	RoleEdit
	RoleDelete
	RoleDownload
	RoleUpload
	RoleExternalLink
	RoleFavorite
)

// fallbackIcon is used for roles without a mapping.
const fallbackIcon = "circle"

// RoleDefinition describes a role entry.
type RoleDefinition struct {
	Role        Role
	Name        string
	Description string
}

var roleCatalog = []RoleDefinition{
	{
		Role:        RoleGeneric,
		Name:        "Generic",
		Description: "Default icon for uncategorized entries.",
	},
	{
		Role:        RoleClose,
		Name:        "Close",
		Description: "Dismiss a dialog, drawer or toast.",
	},
	{
		Role:        RoleMenu,
		Name:        "Menu",
		Description: "Open the navigation menu.",
	},
	{
		Role:        RoleExpand,
		Name:        "Expand",
		Description: "Reveal collapsed content.",
	},
	{
		Role:        RoleCollapse,
		Name:        "Collapse",
		Description: "Hide expanded content.",
	},
	{
		Role:        RoleSearch,
		Name:        "Search",
		Description: "Search and filtering entry points.",
	},
	{
		Role:        RoleSettings,
		Name:        "Settings",
		Description: "Application settings and configuration.",
	},
	{
		Role:        RoleNotification,
		Name:        "Notification",
		Description: "Notification inbox and alerts.",
	},
	{
		Role:        RoleProfile,
		Name:        "Profile",
		Description: "Account and profile pages.",
	},
	{
		Role:        RoleLogOut,
		Name:        "Log Out",
		Description: "User logout actions.",
	},
	{
		Role:        RoleSuccess,
		Name:        "Success",
		Description: "Completed or confirmed state.",
	},
	{
		Role:        RoleWarning,
		Name:        "Warning",
		Description: "Recoverable problems that need attention.",
	},
	{
		Role:        RoleError,
		Name:        "Error",
		Description: "Failed operations.",
	},
	{
		Role:        RoleInfo,
		Name:        "Info",
		Description: "Neutral informational messages.",
	},
	{
		Role:        RoleAdd,
		Name:        "Add",
		Description: "Create a new entry.",
	},
	{
		Role:        RoleRemove,
		Name:        "Remove",
		Description: "Remove an entry from a list.",
	},
	{
		Role:        RoleEdit,
		Name:        "Edit",
		Description: "Edit an existing entry.",
	},
	{
		Role:        RoleDelete,
		Name:        "Delete",
		Description: "Permanently delete an entry.",
	},
	{
		Role:        RoleDownload,
		Name:        "Download",
		Description: "Download or export data.",
	},
	{
		Role:        RoleUpload,
		Name:        "Upload",
		Description: "Upload or import data.",
	},
	{
		Role:        RoleExternalLink,
		Name:        "External Link",
		Description: "Links that leave the application.",
	},
	{
		Role:        RoleFavorite,
		Name:        "Favorite",
		Description: "Favorites and likes.",
	},
}

var roleIconNames = map[Role]string{
	RoleGeneric:      "circle",
	RoleClose:        "x",
	RoleMenu:         "menu",
	RoleExpand:       "chevron-down",
	RoleCollapse:     "chevron-up",
	RoleSearch:       "search",
	RoleSettings:     "settings",
	RoleNotification: "bell",
	RoleProfile:      "user",
	RoleLogOut:       "log-out",
	RoleSuccess:      "check-circle",
	RoleWarning:      "alert-triangle",
	RoleError:        "x-circle",
	RoleInfo:         "info",
	RoleAdd:          "plus",
	RoleRemove:       "minus",
	RoleEdit:         "edit-2",
	RoleDelete:       "trash-2",
	RoleDownload:     "download",
	RoleUpload:       "upload",
	RoleExternalLink: "external-link",
	RoleFavorite:     "heart",
}

// RoleCatalog returns a copy of the role definitions.
func RoleCatalog() []RoleDefinition {
	result := make([]RoleDefinition, len(roleCatalog))
	copy(result, roleCatalog)
	return result
}

// RoleIcon returns the icon name mapped to role.
func RoleIcon(role Role) (string, bool) {
	name, ok := roleIconNames[role]
	return name, ok
}

// RoleIconOrDefault provides a stable icon name even when the role is unknown.
func RoleIconOrDefault(role Role) string {
	if name, ok := roleIconNames[role]; ok {
		return name
	}
	return fallbackIcon
}

// RenderRole renders the icon mapped to role.
func RenderRole(role Role, p Properties) Element {
	ic, err := Lookup(RoleIconOrDefault(role))
	if err != nil {
		ic = &iconCircle
	}
	return ic.Render(p)
}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleCatalog) {
		return roleCatalog[r].Name
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

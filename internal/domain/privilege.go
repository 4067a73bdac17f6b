package domain

// Privilege names a permission checked by the access gate.
type Privilege string

const (
	// PrivilegeManageGlossaries allows managing every glossary entity.
	PrivilegeManageGlossaries Privilege = "MANAGE_GLOSSARIES"
	// PrivilegeManageGlossaryChildren allows managing the direct children of one node.
	PrivilegeManageGlossaryChildren Privilege = "MANAGE_GLOSSARY_CHILDREN"
	// PrivilegeManageAllGlossaryChildren allows managing every descendant of one node.
	PrivilegeManageAllGlossaryChildren Privilege = "MANAGE_ALL_GLOSSARY_CHILDREN"
)

// IsValid reports whether p is a known privilege.
func (p Privilege) IsValid() bool {
	switch p {
	case PrivilegeManageGlossaries, PrivilegeManageGlossaryChildren, PrivilegeManageAllGlossaryChildren:
		return true
	}
	return false
}

package store

import (
	"fmt"
	"strings"
)

// Record store paths are slash separated and tenant scoped:
//
//	clubs/{ownerId}/branches/{branchId}
//	clubs/{ownerId}/branches/{branchId}/groups/{groupId}
//	clubs/{ownerId}/students/{groupId}/{studentId}
//	clubs/{ownerId}/trainers/{trainerId}
//	clubs/{ownerId}/attendance/{groupId}/{YYYYMMDD}/{HH_MM}/{entryId}
//	clubs/{ownerId}/progress/{studentId}/{recordId}
//	clubs/{ownerId}/matches/{matchId}
//	clubs/{ownerId}/payments/{paymentId}
//
// A collection path is a record path minus its final key segment.

func BranchesPath(ownerID string) string {
	return fmt.Sprintf("clubs/%s/branches", ownerID)
}

func GroupsPath(ownerID, branchID string) string {
	return fmt.Sprintf("clubs/%s/branches/%s/groups", ownerID, branchID)
}

func StudentsPath(ownerID, groupID string) string {
	return fmt.Sprintf("clubs/%s/students/%s", ownerID, groupID)
}

// StudentsRootPath spans every group's students.
func StudentsRootPath(ownerID string) string {
	return fmt.Sprintf("clubs/%s/students", ownerID)
}

func TrainersPath(ownerID string) string {
	return fmt.Sprintf("clubs/%s/trainers", ownerID)
}

func AttendanceGroupPath(ownerID, groupID string) string {
	return fmt.Sprintf("clubs/%s/attendance/%s", ownerID, groupID)
}

// AttendanceSlotPath addresses one session: date is YYYYMMDD and slot
// is HH_MM (colons are not valid path characters).
func AttendanceSlotPath(ownerID, groupID, date, slot string) string {
	return fmt.Sprintf("clubs/%s/attendance/%s/%s/%s", ownerID, groupID, date, slot)
}

func ProgressPath(ownerID, studentID string) string {
	return fmt.Sprintf("clubs/%s/progress/%s", ownerID, studentID)
}

func MatchesPath(ownerID string) string {
	return fmt.Sprintf("clubs/%s/matches", ownerID)
}

func PaymentsPath(ownerID string) string {
	return fmt.Sprintf("clubs/%s/payments", ownerID)
}

// ValidSegment reports whether s can be used as a single path segment.
func ValidSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/ \t\n")
}

// ValidPath reports whether every segment of path is valid.
func ValidPath(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range strings.Split(path, "/") {
		if !ValidSegment(seg) {
			return false
		}
	}
	return true
}

// OwnedBy reports whether path lies inside the tenant partition of
// ownerID. Used to reject cross-tenant subscriptions.
func OwnedBy(path, ownerID string) bool {
	prefix := "clubs/" + ownerID
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Split separates a record path into its collection path and key.
func Split(recordPath string) (parent, key string) {
	i := strings.LastIndex(recordPath, "/")
	if i < 0 {
		return "", recordPath
	}
	return recordPath[:i], recordPath[i+1:]
}

// isAncestor reports whether a equals b or is a path prefix of b.
func isAncestor(a, b string) bool {
	return a == b || strings.HasPrefix(b, a+"/")
}

package logger

// Example: tester01 -> tes*****
func MaskMemberID(memberID string) string {
	if memberID == "" {
		return ""
	}

	visible := 3
	if len(memberID) < visible {
		visible = 1
	}

	masked := []rune(memberID)
	for i := visible; i < len(masked); i++ {
		masked[i] = '*'
	}
	return string(masked)
}

// Example: 01012345678 -> 010****5678
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if len(phone) < 8 {
		return "***"
	}

	head := phone[:3]
	tail := phone[len(phone)-4:]

	masked := make([]byte, 0, len(phone))
	masked = append(masked, head...)
	for i := 3; i < len(phone)-4; i++ {
		masked = append(masked, '*')
	}
	masked = append(masked, tail...)
	return string(masked)
}

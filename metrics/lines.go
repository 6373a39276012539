package metrics

import "strings"

// CountLines classifies every line of source as blank, comment, or code.
// A line carrying both code and a trailing comment counts as code. Block
// comments may span lines; nesting is not tracked.
func CountLines(source string, style CommentStyle) LineCounts {
	if source == "" {
		return LineCounts{}
	}

	counts := LineCounts{}
	inBlock := false
	var blockClose string

	for _, line := range strings.Split(source, "\n") {
		counts.Total++
		trimmed := strings.TrimSpace(line)

		if inBlock {
			counts.Comment++
			if idx := strings.Index(trimmed, blockClose); idx >= 0 {
				inBlock = false
				rest := strings.TrimSpace(trimmed[idx+len(blockClose):])
				if rest != "" {
					// Code after the block close outweighs the comment.
					counts.Comment--
					counts.Source++
				}
			}
			continue
		}

		if trimmed == "" {
			counts.Blank++
			continue
		}

		if prefixComment(trimmed, style.LinePrefixes) {
			counts.Comment++
			continue
		}

		if open, close, ok := blockCommentStart(trimmed, style.BlockPairs); ok {
			body := trimmed[len(open):]
			if idx := strings.Index(body, close); idx >= 0 {
				rest := strings.TrimSpace(body[idx+len(close):])
				if rest != "" {
					counts.Source++
				} else {
					counts.Comment++
				}
			} else {
				counts.Comment++
				inBlock = true
				blockClose = close
			}
			continue
		}

		counts.Source++
	}

	return counts
}

func prefixComment(trimmed string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func blockCommentStart(trimmed string, pairs [][2]string) (open, close string, ok bool) {
	for _, pair := range pairs {
		if strings.HasPrefix(trimmed, pair[0]) {
			return pair[0], pair[1], true
		}
	}
	return "", "", false
}

package classification

// Similarity scores two strings between 0 and 1 using Levenshtein distance
// over their normalized forms.
func Similarity(s1, s2 string) float64 {
	return calculateSimilarity(normalize(s1), normalize(s2))
}

func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := createMatrix(s1, s2)
	initializeFirstRowAndColumn(s1, s2, matrix)
	fillMatrix(s1, s2, matrix)

	return matrix[len(s1)][len(s2)]
}

func createMatrix(s1 string, s2 string) [][]int {
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	return matrix
}

func initializeFirstRowAndColumn(s1 string, s2 string, matrix [][]int) {
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}
}

func fillMatrix(s1 string, s2 string, matrix [][]int) {
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
}

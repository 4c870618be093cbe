package board

// Direction is one of the eight compass directions a piece can step in.
type Direction uint8

// The order matters: orthogonal directions come first, then the diagonals,
// so rook and bishop rays are contiguous slices of allDirections.
const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	numDirections
)

// directionOffsets is the index delta of one step in each direction.
var directionOffsets = [numDirections]int{-8, 8, -1, 1, -9, 9, -7, 7}

var allDirections = [numDirections]Direction{
	North, South, West, East, NorthWest, SouthEast, NorthEast, SouthWest,
}

var (
	orthogonalDirections = allDirections[:4]
	diagonalDirections   = allDirections[4:]
)

// edgeDistance holds, for every square and direction, how many steps fit
// before the board edge.
var edgeDistance [64][numDirections]int

func init() {
	initEdgeDistance()
}

func initEdgeDistance() {
	for sq := A8; sq <= H1; sq++ {
		rank, file := sq.Rank(), sq.File()

		north := rank
		south := 7 - rank
		west := file
		east := 7 - file

		edgeDistance[sq] = [numDirections]int{
			North:     north,
			South:     south,
			West:      west,
			East:      east,
			NorthWest: min(north, west),
			SouthEast: min(south, east),
			NorthEast: min(north, east),
			SouthWest: min(south, west),
		}
	}
}

// Offset returns the square index delta of a single step in d.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	case NorthWest:
		return "NorthWest"
	case SouthEast:
		return "SouthEast"
	case NorthEast:
		return "NorthEast"
	case SouthWest:
		return "SouthWest"
	default:
		return "None"
	}
}

// EdgeDistance returns the number of squares between sq and the board edge
// in direction d.
func EdgeDistance(sq Square, d Direction) int {
	return edgeDistance[sq][d]
}

// step returns the square n steps away from sq in direction d.
// Callers must keep n within EdgeDistance(sq, d).
func (sq Square) step(d Direction, n int) Square {
	return Square(int(sq) + n*directionOffsets[d])
}

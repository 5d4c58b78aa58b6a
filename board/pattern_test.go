package board_test

import (
	"testing"

	"variantchess/board"
)

func matchesAt(pattern board.PatternEnum, x, y int) bool {
	return pattern.Matches(pos(0, 0), pos(x, y), nil)
}

func Test_leaf_patterns(test *testing.T) {
	test.Parallel()

	test.Run("test unbounded sentinel", func(test *testing.T) {
		test.Parallel()
		unbounded := board.DirectionalPattern(board.Unbounded)
		bounded := board.DirectionalPattern(3)

		for _, n := range []int{1, 3, 4, 50, 1000} {
			for _, dir := range board.AllDirections {
				end := dir.ToPosition().Scale(n)
				assertBoolEq(test, true, unbounded.Matches(pos(0, 0), end, nil))
				assertBoolEq(test, n <= 3, bounded.Matches(pos(0, 0), end, nil))
			}
		}
		assertBoolEq(test, false, unbounded.Matches(pos(0, 0), pos(2, 2), nil))
		assertBoolEq(test, false, unbounded.Matches(pos(0, 0), pos(1, 2), nil))
	})

	test.Run("test subdirectional and diagonal", func(test *testing.T) {
		test.Parallel()
		king := board.SubdirectionalPattern(1)
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				expected := max(x, -x, y, -y) <= 1
				assertBoolEq(test, expected, matchesAt(king, x, y))
			}
		}

		bishop := board.DiagonalPattern(board.Unbounded)
		assertBoolEq(test, true, matchesAt(bishop, -6, 6))
		assertBoolEq(test, false, matchesAt(bishop, 0, 6))

		shortDiagonal := board.DiagonalPattern(1)
		assertBoolEq(test, true, matchesAt(shortDiagonal, 1, -1))
		assertBoolEq(test, false, matchesAt(shortDiagonal, 2, 2))
		assertBoolEq(test, false, matchesAt(shortDiagonal, 1, 0))
	})

	test.Run("test circle and square", func(test *testing.T) {
		test.Parallel()
		circle := board.CirclePattern(4)
		assertBoolEq(test, true, matchesAt(circle, 4, 0))
		assertBoolEq(test, true, matchesAt(circle, 2, 3))
		assertBoolEq(test, false, matchesAt(circle, 3, 3))
		assertBoolEq(test, false, matchesAt(circle, 0, -5))

		square := board.SquarePattern(3)
		assertBoolEq(test, true, matchesAt(square, 3, -3))
		assertBoolEq(test, true, matchesAt(square, 1, 3))
		assertBoolEq(test, false, matchesAt(square, 4, 0))

		// the sentinel only means unbounded for the line leaves
		assertBoolEq(test, false, matchesAt(board.CirclePattern(board.Unbounded), 0, 0))
		assertBoolEq(test, false, matchesAt(board.SquarePattern(board.Unbounded), 1, 0))
	})

	test.Run("test knight", func(test *testing.T) {
		test.Parallel()
		knight := board.KnightPattern(2, 1)
		count := 0
		for x := -3; x <= 3; x++ {
			for y := -3; y <= 3; y++ {
				if matchesAt(knight, x, y) {
					count++
				}
			}
		}
		assertNumEq(test, 8, count)
		assertBoolEq(test, true, matchesAt(knight, -1, 2))
		assertBoolEq(test, false, matchesAt(knight, 2, 2))

		assertBoolEq(test, true, matchesAt(board.KnightPattern(3, 1), -1, -3))
	})

	test.Run("test pawns", func(test *testing.T) {
		test.Parallel()
		move := board.PawnMovePattern(board.Up)
		assertBoolEq(test, true, matchesAt(move, 0, 1))
		assertBoolEq(test, false, matchesAt(move, 0, 2))
		assertBoolEq(test, false, matchesAt(move, 0, -1))
		assertBoolEq(test, true, matchesAt(board.PawnMovePattern(board.Left), -1, 0))

		take := board.PawnTakePattern(board.Up)
		assertBoolEq(test, true, matchesAt(take, 1, 1))
		assertBoolEq(test, true, matchesAt(take, -1, 1))
		assertBoolEq(test, false, matchesAt(take, 0, 1))
		assertBoolEq(test, false, matchesAt(take, 1, -1))

		superMove := board.SuperPawnMovePattern(board.Down)
		expected := []board.Position{pos(-1, -2), pos(0, -2), pos(1, -2), pos(-1, -1), pos(0, -1), pos(1, -1)}
		chessBoard := board.NewBoard(9, 9)
		received := chessBoard.GetPositions(pos(4, 4), board.NewPattern(superMove))
		for i := range expected {
			expected[i] = expected[i].Add(pos(4, 4))
		}
		assertPositions(test, expected, received)

		superTake := board.SuperPawnTakePattern(board.Up)
		assertBoolEq(test, true, matchesAt(superTake, 0, 1))
		assertBoolEq(test, true, matchesAt(superTake, -1, 1))
		assertBoolEq(test, false, matchesAt(superTake, 0, 2))
	})

	test.Run("test pawn ability", func(test *testing.T) {
		test.Parallel()
		chessBoard := board.NewBoard(8, 8)
		up := board.PawnAbilityPattern(board.Up)
		left := board.PawnAbilityPattern(board.Left)

		assertBoolEq(test, true, up.Matches(pos(3, 7), pos(3, 7), chessBoard))
		assertBoolEq(test, false, up.Matches(pos(3, 3), pos(3, 3), chessBoard))
		assertBoolEq(test, false, up.Matches(pos(3, 6), pos(3, 7), chessBoard))
		assertBoolEq(test, true, left.Matches(pos(0, 4), pos(0, 4), chessBoard))
		assertBoolEq(test, false, up.Matches(pos(3, 7), pos(3, 7), nil))
	})

	test.Run("test randomizable passes through", func(test *testing.T) {
		test.Parallel()
		inner := board.SubdirectionalPattern(2)
		crazy := board.GetCrazyPawnPattern()
		for x := -3; x <= 3; x++ {
			for y := -3; y <= 3; y++ {
				assertBoolEq(test, matchesAt(inner, x, y), matchesAt(crazy, x, y))
			}
		}
	})
}

func Test_pattern_containers(test *testing.T) {
	test.Parallel()

	test.Run("test composite is a union", func(test *testing.T) {
		test.Parallel()
		chessBoard := board.NewBoard(8, 8)
		leaves := []board.PatternEnum{
			board.GetKingPattern(),
			board.GetRookPattern(),
			board.GetKnightPattern(),
			board.GetCirclePattern(2),
			board.GetPawnTakePattern(board.Up),
			board.GetPawnAbilityPattern(board.Up),
		}

		for _, a := range leaves {
			for _, b := range leaves {
				composite := board.CompositePattern(a, b)
				outer := board.NewPatternPair(a, b)
				for _, start := range []board.Position{pos(0, 0), pos(3, 7), pos(4, 4)} {
					for x := 0; x < 8; x++ {
						for y := 0; y < 8; y++ {
							end := pos(x, y)
							expected := a.Matches(start, end, chessBoard) || b.Matches(start, end, chessBoard)
							if composite.Matches(start, end, chessBoard) != expected ||
								outer.Matches(start, end, chessBoard) != expected {
								test.Fatalf("%s | %s from %s to %s: expected %t", a, b, start, end, expected)
							}
						}
					}
				}
			}
		}
	})

	test.Run("test null pattern", func(test *testing.T) {
		test.Parallel()
		null := board.NullPattern()
		assertBoolEq(test, true, null.IsNull())
		assertBoolEq(test, false, null.HasPattern())
		assertBoolEq(test, false, null.Matches(pos(0, 0), pos(0, 0), nil))
		assertBoolEq(test, false, board.CompositePattern().Matches(pos(0, 0), pos(0, 0), nil))
		assertNumEq(test, 0, len(board.NewBoard(8, 8).GetSquares(pos(0, 0), null)))
	})

	test.Run("test origin matches bounded leaves", func(test *testing.T) {
		test.Parallel()
		assertBoolEq(test, true, matchesAt(board.GetKingPattern(), 0, 0))
		assertBoolEq(test, true, matchesAt(board.GetRookPattern(), 0, 0))
		assertBoolEq(test, false, matchesAt(board.GetKnightPattern(), 0, 0))
		assertBoolEq(test, false, matchesAt(board.GetPawnMovePattern(board.Up), 0, 0))
	})

	test.Run("test equality and members", func(test *testing.T) {
		test.Parallel()
		pattern := board.NewPatternMany(board.GetQueenPattern(), board.GetKnightPattern())
		same := board.NewPatternPair(
			board.CompositePattern(board.DirectionalPattern(-1), board.DiagonalPattern(-1)),
			board.KnightPattern(2, 1),
		)
		assertBoolEq(test, true, pattern.Equal(same))
		assertBoolEq(test, false, pattern.Equal(board.NewPattern(board.GetQueenPattern())))
		assertBoolEq(test, false, board.KnightPattern(2, 1).Equal(board.KnightPattern(1, 2)))

		members := pattern.Members()
		members[0] = board.GetKingPattern()
		assertBoolEq(test, true, pattern.Equal(same))

		assertEq(test, board.CompositeKind, pattern.Members()[0].Kind())
		assertNumEq(test, 2, len(pattern.Members()[0].Inner()))
		assertNumEq(test, 0, len(board.GetKingPattern().Inner()))
	})

	test.Run("test strings", func(test *testing.T) {
		test.Parallel()
		assertStrEquality(test, "null", board.NullPattern().String())
		assertStrEquality(test, "Composite(Directional(-1), Diagonal(-1))", board.GetQueenPattern().String())
		assertStrEquality(test, "[Knight(2,1), Subdirectional(1)]",
			board.NewPatternPair(board.GetKnightPattern(), board.GetKingPattern()).String())
		assertStrEquality(test, "Randomizable(Subdirectional(2))", board.GetCrazyPawnPattern().String())
		assertStrEquality(test, "PawnAbility(up)", board.GetPawnAbilityPattern(board.Up).String())
	})

	test.Run("test named composites", func(test *testing.T) {
		test.Parallel()
		assertBoolEq(test, true, board.GetMermaidPattern().Equal(
			board.CompositePattern(board.KnightPattern(2, 1), board.SubdirectionalPattern(1))))
		assertBoolEq(test, true, board.GetOniPattern().Equal(
			board.CompositePattern(board.KnightPattern(2, 1), board.DirectionalPattern(-1))))
		assertBoolEq(test, true, board.GetWitchPattern().Equal(
			board.CompositePattern(board.DirectionalPattern(-1), board.SubdirectionalPattern(1))))
		assertBoolEq(test, true, board.GetArcherMovePattern().Equal(
			board.CompositePattern(board.DirectionalPattern(2), board.SubdirectionalPattern(1))))
		assertBoolEq(test, true, board.GetCannonAttackPattern().Equal(board.SquarePattern(3)))
		assertBoolEq(test, true, board.GetGargoylePattern().Equal(board.CirclePattern(5)))
	})
}

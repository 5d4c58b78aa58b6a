package board_test

import (
	"slices"
	"testing"

	"variantchess/board"
)

func Test_catalog(test *testing.T) {
	test.Parallel()

	test.Run("test every type has an entry", func(test *testing.T) {
		test.Parallel()
		types := board.AllPieceTypes()
		assertNumEq(test, 38, len(types))
		assertNumEq(test, len(types), len(board.PieceTypeStrings()))

		for _, pieceType := range types {
			template, ok := board.TemplateFor(pieceType)
			if !ok {
				test.Fatalf("%s has no catalog entry", pieceType)
			}
			if len(template.Tags) == 0 {
				test.Fatalf("%s has no tags", pieceType)
			}

			parsed, err := board.ParsePieceType(pieceType.String())
			assertSuccess(test, err)
			assertEq(test, pieceType, parsed)
		}

		_, ok := board.TemplateFor(board.PieceType(len(types)))
		assertBoolEq(test, false, ok)
	})

	test.Run("test knight leaves are not diagonal steps", func(test *testing.T) {
		test.Parallel()
		var walk func(pattern board.PatternEnum) bool
		walk = func(pattern board.PatternEnum) bool {
			if pattern.Kind() == board.KnightKind {
				for k := 0; k <= 4; k++ {
					if pattern.Matches(pos(0, 0), pos(k, k), nil) {
						return false
					}
				}
			}
			for _, inner := range pattern.Inner() {
				if !walk(inner) {
					return false
				}
			}
			return true
		}

		for _, pieceType := range board.AllPieceTypes() {
			template, _ := board.TemplateFor(pieceType)
			for _, pattern := range []board.Pattern{template.Move, template.Take, template.Attack, template.Ability.Pattern} {
				for _, member := range pattern.Members() {
					if !walk(member) {
						test.Fatalf("%s carries a degenerate knight in %s", pieceType, pattern)
					}
				}
			}
		}
	})

	test.Run("test classic pieces", func(test *testing.T) {
		test.Parallel()
		queen, _ := board.TemplateFor(board.Queen)
		assertBoolEq(test, true, queen.Move.Equal(board.NewPatternPair(board.GetRookPattern(), board.GetBishopPattern())))
		assertBoolEq(test, true, queen.Move.Equal(queen.Take))
		assertBoolEq(test, true, queen.Attack.IsNull())

		pawn, _ := board.TemplateFor(board.Pawn)
		assertBoolEq(test, true, pawn.Move.Equal(board.NewPattern(board.PawnMovePattern(board.Up))))
		assertBoolEq(test, true, pawn.Take.Equal(board.NewPattern(board.PawnTakePattern(board.Up))))
		assertBoolEq(test, true, pawn.Ability.Equal(
			board.NewAbilityData(0, 0, 1, 0, board.NewPattern(board.PawnAbilityPattern(board.Up)))))

		knight, _ := board.TemplateFor(board.Knight)
		assertBoolEq(test, true, knight.Ability.Equal(board.NewAbilityData(1, 1, 1, 10, board.NullPattern())))

		king, _ := board.TemplateFor(board.King)
		assertBoolEq(test, true, slices.Contains(king.Tags, board.Immune))
	})

	test.Run("test variant pieces", func(test *testing.T) {
		test.Parallel()
		archer, _ := board.TemplateFor(board.Archer)
		assertBoolEq(test, true, archer.Attack.Equal(board.NewPattern(board.CirclePattern(4))))
		assertBoolEq(test, true, archer.Take.IsNull())

		balista, _ := board.TemplateFor(board.Balista)
		assertBoolEq(test, true, balista.Attack.Equal(board.NewPattern(board.DirectionalPattern(6))))

		cannon, _ := board.TemplateFor(board.Cannon)
		assertBoolEq(test, true, cannon.Attack.Equal(board.NewPattern(board.SquarePattern(3))))

		crazy, _ := board.TemplateFor(board.CrazyPawn)
		for _, pattern := range []board.Pattern{crazy.Move, crazy.Take, crazy.Attack} {
			assertBoolEq(test, true, pattern.Equal(board.NewPattern(board.GetCrazyPawnPattern())))
		}

		superPawn, _ := board.TemplateFor(board.SuperPawn)
		assertBoolEq(test, true, superPawn.Take.Equal(board.NewPattern(board.SuperPawnTakePattern(board.Up))))

		ship, _ := board.TemplateFor(board.Ship)
		assertBoolEq(test, true, ship.Take.Equal(board.NewPattern(board.SubdirectionalPattern(1))))

		for _, pieceType := range []board.PieceType{board.Wall, board.Portal, board.SpiderEgg, board.Swamp} {
			template, _ := board.TemplateFor(pieceType)
			if !template.Move.IsNull() || !template.Take.IsNull() || !template.Attack.IsNull() {
				test.Fatalf("%s should not move", pieceType)
			}
		}

		attackers := 0
		for _, pieceType := range board.AllPieceTypes() {
			template, _ := board.TemplateFor(pieceType)
			if template.Attack.HasPattern() {
				attackers++
			}
		}
		assertNumEq(test, 4, attackers)
	})

	test.Run("test properties", func(test *testing.T) {
		test.Parallel()
		golem := board.NewPiece(1, board.Golem)
		life, ok := golem.Property(board.Life)
		assertBoolEq(test, true, ok)
		assertNumEq(test, uint32(4), life.Value)

		golem.Properties[0].Value = 1
		other := board.NewPiece(2, board.Golem)
		life, _ = other.Property(board.Life)
		assertNumEq(test, uint32(4), life.Value)

		ogre := board.NewPiece(3, board.Ogre)
		life, _ = ogre.Property(board.Life)
		assertNumEq(test, uint32(2), life.Value)

		necromancer := board.NewPiece(4, board.Necromancer)
		list, ok := necromancer.Property(board.PieceList)
		assertBoolEq(test, true, ok)
		assertNumEq(test, 0, len(list.Pieces))

		_, ok = board.NewPiece(5, board.Pawn).Property(board.Life)
		assertBoolEq(test, false, ok)
	})
}

func Test_pieces(test *testing.T) {
	test.Parallel()

	test.Run("test new piece", func(test *testing.T) {
		test.Parallel()
		wall := board.NewPiece(7, board.Wall)
		assertNumEq(test, uint32(7), wall.ID)
		assertBoolEq(test, true, wall.Alive)
		assertBoolEq(test, false, wall.Moved)
		assertBoolEq(test, true, wall.IsStructure())
		assertBoolEq(test, true, wall.HasTag(board.Impenetrable))
		assertBoolEq(test, false, wall.HasTag(board.Biologic))
		assertStrEquality(test, "Wall#7", wall.String())

		// tag sets are per piece
		wall.Tags.Add(board.Dead)
		assertBoolEq(test, false, board.NewPiece(8, board.Wall).HasTag(board.Dead))
	})

	test.Run("test pattern for action", func(test *testing.T) {
		test.Parallel()
		pawn := board.NewPiece(1, board.Pawn)
		assertBoolEq(test, true, pawn.PatternFor(board.Move).Equal(pawn.MovePattern))
		assertBoolEq(test, true, pawn.PatternFor(board.Take).Equal(pawn.TakePattern))
		assertBoolEq(test, true, pawn.PatternFor(board.Attack).IsNull())
		assertBoolEq(test, true, pawn.PatternFor(board.Ability).Equal(pawn.Ability.Pattern))
		assertBoolEq(test, true, pawn.PatternFor(board.BasicAction(9)).IsNull())
	})

	test.Run("test parsing", func(test *testing.T) {
		test.Parallel()
		received, err := board.ParsePieceType(" superpawn ")
		assertSuccess(test, err)
		assertEq(test, board.SuperPawn, received)

		_, err = board.ParsePieceType("Dragonfly")
		assertErrorIs(test, board.ErrUnknownPieceType, err)

		action, err := board.ParseBasicAction("Take")
		assertSuccess(test, err)
		assertEq(test, board.Take, action)
		_, err = board.ParseBasicAction("jump")
		assertErrorIs(test, board.ErrUnknownAction, err)
	})
}

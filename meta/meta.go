// meta/meta.go
package meta

// MAX_ATTACK_DICE is the most dice an attacker may roll in one combat round.
const MAX_ATTACK_DICE = 3

// MAX_DEFEND_DICE is the most dice a defender may roll in one combat round.
const MAX_DEFEND_DICE = 3

// FIRST_PLACEMENT_ARMIES is granted to each player in the REINFORCEMENT_5 round.
const FIRST_PLACEMENT_ARMIES = 5

// SECOND_PLACEMENT_ARMIES is granted to each player in the REINFORCEMENT_3 round.
const SECOND_PLACEMENT_ARMIES = 3

// MIN_REINFORCEMENT is the floor of the per-turn base allotment.
const MIN_REINFORCEMENT = 3

// MIN_PLAYERS needed to start a match.
const MIN_PLAYERS = 2

// MAX_PLAYERS a match can seat.
const MAX_PLAYERS = 6

// COUNTRY_CARD_BONUS armies go on a country when its card is drawn by its owner.
const COUNTRY_CARD_BONUS = 2

// COMMON_OBJECTIVE_COUNTRIES is how many countries win the common objective.
const COMMON_OBJECTIVE_COUNTRIES = 30

// MAX_TURNS before the CLI gives up on a simulated match.
const MAX_TURNS = 300

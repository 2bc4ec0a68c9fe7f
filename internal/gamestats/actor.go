package gamestats

import "encoding/json"

// ActorKind discriminates real players from the two synthetic actors the
// game log attributes administrative lines to.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorSystem
	ActorCoach
	ActorUnknown
)

const (
	systemActorName  = "System"
	coachActorName   = "Coach"
	unknownActorName = "Unknown"
)

// Actor is who an event is attributed to. Synthetic actors are sentinels,
// kept out of the player name space so alias mapping can never touch them.
// On the wire an actor is a plain string.
type Actor struct {
	Kind ActorKind
	Name string
}

func PlayerActor(name string) Actor { return Actor{Kind: ActorPlayer, Name: name} }
func SystemActor() Actor            { return Actor{Kind: ActorSystem, Name: systemActorName} }
func CoachActor() Actor             { return Actor{Kind: ActorCoach, Name: coachActorName} }
func UnknownActor() Actor           { return Actor{Kind: ActorUnknown, Name: unknownActorName} }

// IsSynthetic reports whether the actor is not a real player.
func (a Actor) IsSynthetic() bool { return a.Kind != ActorPlayer }

func (a Actor) String() string { return a.Name }

func (a Actor) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Name)
}

func (a *Actor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case systemActorName:
		*a = SystemActor()
	case coachActorName:
		*a = CoachActor()
	case unknownActorName:
		*a = UnknownActor()
	default:
		*a = PlayerActor(name)
	}
	return nil
}

// Flag is a boolean that serializes as the strings "true" / "false", the
// form the legacy record files use for the starting-five marker.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return json.Marshal("true")
	}
	return json.Marshal("false")
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*f = Flag(asBool)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*f = asString == "true"
	return nil
}

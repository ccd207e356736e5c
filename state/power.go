package state

// Power is the ON/OFF state of the controller.
type Power uint8

const (
	On Power = iota
	Off
)

func (p Power) String() string {
	if p == Off {
		return "OFF"
	}
	return "ON"
}

func (s *Store) PowerOn() {
	s.power.store(On)
}

func (s *Store) PowerOff() {
	s.power.store(Off)
}

func (s *Store) PowerState() Power {
	return s.power.load()
}

// TogglePower flips the power state in one critical section and returns the
// new value.
func (s *Store) TogglePower() Power {
	var next Power
	s.power.update(func(p Power) Power {
		next = On
		if p == On {
			next = Off
		}
		return next
	})
	return next
}

package lab

const hydrostaticTheory = `## Hydrostatic pressure

    P (psi) = SG x 8.33 x 0.052 x TVD (ft)

- **8.33** converts specific gravity to mud weight in ppg.
- **0.052** is the gradient of 1 ppg fluid in psi/ft.
- Only true vertical depth enters the equation. Hole angle and pipe
  geometry do not.
- At any depth the pressure acts equally in every direction, which is why
  every probe at the same level reads the same value.
`

const hydrostaticAnalogies = `## Everyday pictures

- **Diving.** Your ears feel the same squeeze at 10 m whether you swim
  straight down or along a sloping reef. Depth, not path, sets the load.
- **Stacked books.** Each layer of fluid is a book on the pile. The
  bottom book carries every book above it, and heavier books (denser
  fluid) press harder.
- **Water tower.** Town pressure comes from the height of the tank above
  the tap, not from how wide the tank is.
`

const holeCleaningTheory = `## Cuttings transport

    Va   = Q x 24.5 / 35                     (annular velocity)
    Vs   = 15 x d^1.5 / (mu / 5)             (slip velocity)
    Vnet = Va - Vs cos(inc) - Boycott

- Above **45 deg** cuttings settle onto the low side and slide back down
  (Boycott settling). The penalty grows toward horizontal.
- Transport efficiency is **Vnet / Va**, clamped to [0, 1].
- The bedding alarm trips on any of: efficiency below 0.2, inclination
  above 60 deg with flow below 400 gpm, viscosity below 20 cP with
  cuttings above 10 mm.
`

const holeCleaningAnalogies = `## Everyday pictures

- **Leaf blower.** Enough air speed lifts the leaves (annular velocity);
  heavy wet leaves fall back faster (slip velocity).
- **Snow globe on its side.** Tilt the globe and the flakes pile on the
  low wall instead of falling back to the base. That pile is a cuttings
  bed.
- **Honey versus water.** A thick fluid holds a crumb in suspension far
  longer than a thin one.
`

const gasTheory = `## Gas migration in a closed well

    P1 x V1 = P2 x V2          (Boyle's law, isothermal)
    P(tvd)  = 14.7 + 0.052 x MW x TVD

- A kick enters at the bottom under the full mud column.
- As it rises the column above it shortens, pressure falls, and the
  bubble grows.
- Expansion is slow for most of the trip and explosive in the last
  10 percent, where the pressure ratio changes fastest.
- Releasing the kick resets the bubble to bottom. Pausing freezes it.
`

const gasAnalogies = `## Everyday pictures

- **Scuba ascent.** Air in a diver's lungs doubles between 10 m and the
  surface, which is why divers exhale on the way up.
- **Soda bottle.** Bubbles near the bottom are tiny. The same bubbles
  are large by the time they pop at the neck.
- **Balloon released underwater.** It barely changes size at depth and
  swells fast near the top.
`

const directionalTheory = `## Minimum-curvature style integration

    inc(i) = clamp(inc(i-1) + build x 0.5, 0, target)
    azm(i) = azm(i-1) + turn x 0.5
    DLS    = sqrt(build^2 + (turn x sin(inc_final))^2)

- The path is integrated over 20 segments of 50 ft using the average of
  the angles at each end of a segment.
- Inclination stops building once it reaches the target tangent angle.
- Dogleg severity above **6 deg/100ft** risks fatigue and casing wear and
  is flagged.
`

const directionalAnalogies = `## Everyday pictures

- **Driving a mountain road.** Build rate is how hard you pitch down the
  slope, turn rate is the steering wheel. Both at once make a corkscrew.
- **Bending a garden hose.** A gentle curve is easy to push through. A
  kink (high dogleg) jams anything you try to feed past it.
- **Flight path.** Climb to cruise altitude, then hold. The hold angle is
  the cruise attitude of the well.
`

package report

import (
	"html/template"
	"io"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// Overview is the view model for the HTML report.
type Overview struct {
	Title       string
	Matches     []MatchView
	Clans       []model.ClanRecord
	MapDist     []model.MapCount
	TotalSeries int
	TotalMaps   int
}

// MatchView decorates a MatchResult with presentation fields.
type MatchView struct {
	model.MatchResult
	DateDisplay string
	Class1      string // winner / loser / draw
	Class2      string
}

func resultClasses(wins1, wins2 int) (string, string) {
	switch {
	case wins1 > wins2:
		return "winner", "loser"
	case wins2 > wins1:
		return "loser", "winner"
	default:
		return "draw", "draw"
	}
}

// BuildOverview assembles the HTML view model from aggregated results.
func BuildOverview(title string, matches []model.MatchResult, clans []model.ClanRecord, dist []model.MapCount, totalSeries, totalMaps int) Overview {
	ov := Overview{
		Title:       title,
		Clans:       clans,
		MapDist:     dist,
		TotalSeries: totalSeries,
		TotalMaps:   totalMaps,
	}
	for _, m := range matches {
		c1, c2 := resultClasses(m.Wins1, m.Wins2)
		date := ""
		if !m.StartTime.IsZero() {
			date = m.StartTime.Format("2006-01-02 15:04")
		}
		ov.Matches = append(ov.Matches, MatchView{
			MatchResult: m,
			DateDisplay: date,
			Class1:      c1,
			Class2:      c2,
		})
	}
	return ov
}

// WriteHTML renders the full overview report.
func WriteHTML(w io.Writer, ov Overview) error {
	return overviewTmpl.Execute(w, ov)
}

var overviewTmpl = template.Must(template.New("overview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>QuakeWorld Match Report</title>
<style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #121212; color: #e0e0e0; margin: 0; padding: 20px; }
    h1 { text-align: center; color: #bb86fc; margin-bottom: 20px; }
    .container { max-width: 900px; margin: 0 auto; }

    .tab-container { text-align: center; margin-bottom: 20px; }
    .tab-btn {
        background: #333; color: #fff; border: none; padding: 10px 20px;
        margin: 0 5px; cursor: pointer; border-radius: 4px; font-weight: bold;
    }
    .tab-btn.active { background: #bb86fc; color: #000; }
    .tab-btn:hover { background: #444; }

    .section { display: none; }
    .section.active { display: block; }

    .data-table { width: 100%; border-collapse: collapse; background: #1e1e1e; border-radius: 8px; overflow: hidden; margin-bottom: 20px; }
    .data-table th, .data-table td { padding: 12px 15px; text-align: center; border-bottom: 1px solid #333; }
    .data-table th { background: #2c2c2c; color: #bb86fc; text-align: left; }
    .data-table td:first-child { text-align: left; font-weight: bold; color: #fff; }
    .data-table tr:hover { background: #252525; }

    .summary-box {
        background: #252525; padding: 15px; border-radius: 8px; text-align: center; margin-bottom: 20px;
        border: 1px solid #333; color: #aaa;
    }
    .summary-box strong { color: #fff; font-size: 1.2em; }

    .match-card { background-color: #1e1e1e; margin-bottom: 15px; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.3); }
    .match-summary {
        display: flex; justify-content: space-between; align-items: center;
        padding: 15px 20px; cursor: pointer; transition: background 0.2s;
    }
    .match-summary:hover { background-color: #2c2c2c; }

    .date-server { font-size: 0.85em; color: #888; width: 160px; }
    .teams { flex-grow: 1; text-align: center; font-size: 1.2em; font-weight: bold; }
    .score-badge {
        padding: 5px 15px; border-radius: 20px; font-weight: bold; background: #333; min-width: 40px; text-align: center;
    }
    .winner { color: #00e676; }
    .loser { color: #cf6679; }
    .draw { color: #ffb74d; }

    details > summary { list-style: none; }
    details > summary::-webkit-details-marker { display: none; }
    .match-details { padding: 0 20px 20px 20px; border-top: 1px solid #333; background: #252525; }

    table.maps-table { width: 100%; border-collapse: collapse; margin-top: 15px; }
    table.maps-table th { text-align: left; color: #bb86fc; border-bottom: 2px solid #444; padding: 10px; }
    table.maps-table td { padding: 10px; border-bottom: 1px solid #333; vertical-align: top; }

    .map-winner { color: #00e676; font-weight: bold; }
    .sub-stats { font-size: 0.85em; color: #aaa; margin-top: 4px; }
    .frags { color: #fff; font-weight: bold; }
    .file-name { display: block; font-size: 0.7em; color: #555; margin-top: 4px; font-family: 'Consolas', 'Monaco', monospace; }

    h2 { color: #bb86fc; font-size: 1.1em; margin-top: 30px; border-bottom: 1px solid #444; padding-bottom: 5px; }
</style>
<script>
    function showTab(tabId) {
        document.querySelectorAll('.section').forEach(el => el.classList.remove('active'));
        document.querySelectorAll('.tab-btn').forEach(el => el.classList.remove('active'));

        document.getElementById(tabId).classList.add('active');
        document.getElementById('btn-' + tabId).classList.add('active');
    }
</script>
</head>
<body>
<div class="container">
    <h1>Match Overview: {{.Title}}</h1>

    <div class="tab-container">
        <button id="btn-matches" class="tab-btn active" onclick="showTab('matches')">Match List</button>
        <button id="btn-stats" class="tab-btn" onclick="showTab('stats')">Clan Summary</button>
    </div>

    <div id="stats" class="section">
        <div class="summary-box">
            Dataset Totals: <strong>{{.TotalSeries}}</strong> Series Played | <strong>{{.TotalMaps}}</strong> Maps Played
        </div>

        <h2>Clan Performance</h2>
        <table class="data-table">
            <thead>
                <tr>
                    <th>Clan</th>
                    <th>Series Played</th>
                    <th>Series Won</th>
                    <th>Maps Played</th>
                    <th>Maps Won</th>
                    <th>Maps Lost</th>
                    <th>Win Rate</th>
                </tr>
            </thead>
            <tbody>
            {{- range .Clans}}
                <tr>
                    <td>{{.Clan}}</td>
                    <td>{{.SeriesPlayed}}</td>
                    <td>{{.SeriesWon}}</td>
                    <td>{{.MapsPlayed}}</td>
                    <td>{{.MapsWon}}</td>
                    <td>{{.MapsLost}}</td>
                    <td>{{printf "%.0f" .WinRate}}%</td>
                </tr>
            {{- end}}
            </tbody>
        </table>

        <h2>Map Distribution</h2>
        <table class="data-table" style="width: 50%; margin: 0 auto;">
            <thead>
                <tr>
                    <th>Map Name</th>
                    <th>Times Played</th>
                </tr>
            </thead>
            <tbody>
            {{- range .MapDist}}
                <tr>
                    <td>{{.MapName}}</td>
                    <td>{{.Count}}</td>
                </tr>
            {{- end}}
            </tbody>
        </table>
    </div>

    <div id="matches" class="section active">
    {{- if not .Matches}}
        <p style="text-align:center">No matches found.</p>
    {{- end}}
    {{- range .Matches}}
        <div class="match-card">
            <details>
                <summary class="match-summary">
                    <div class="date-server">
                        <div>{{.DateDisplay}}</div>
                        <div>{{.Server}}</div>
                    </div>
                    <div class="teams">
                        <span class="{{.Class1}}">{{.Team1}}</span>
                        <span style="color:#666; margin:0 10px;">vs</span>
                        <span class="{{.Class2}}">{{.Team2}}</span>
                    </div>
                    <div class="score-badge">
                        <span class="{{.Class1}}">{{.Wins1}}</span> : <span class="{{.Class2}}">{{.Wins2}}</span>
                    </div>
                </summary>

                <div class="match-details">
                    <table class="maps-table">
                        <thead>
                            <tr>
                                <th style="width: 20%;">Map</th>
                                <th style="width: 40%;">{{.Team1}} Frags</th>
                                <th style="width: 40%;">{{.Team2}} Frags</th>
                            </tr>
                        </thead>
                        <tbody>
                        {{- range .Maps}}
                            <tr>
                                <td>
                                    {{.MapName}}
                                    <span class="file-name">{{.SourceFile}}</span>
                                </td>
                                <td {{if eq .Winner 1}}class="map-winner"{{end}}>{{.Score1}}
                                    <div class="sub-stats">
                                    {{- range $i, $p := .Roster1}}{{if $i}}, {{end}}{{$p.Name}} <span class="frags">({{$p.Frags}})</span>{{- end}}
                                    </div>
                                </td>
                                <td {{if eq .Winner 2}}class="map-winner"{{end}}>{{.Score2}}
                                    <div class="sub-stats">
                                    {{- range $i, $p := .Roster2}}{{if $i}}, {{end}}{{$p.Name}} <span class="frags">({{$p.Frags}})</span>{{- end}}
                                    </div>
                                </td>
                            </tr>
                        {{- end}}
                        </tbody>
                    </table>
                </div>
            </details>
        </div>
    {{- end}}
    </div>
</div>
</body>
</html>
`))

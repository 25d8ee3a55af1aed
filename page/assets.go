package page

const styles = `
:root { --navy: #0b132b; --gold: #d4af37; --ink: #f5f5f5; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--navy); color: var(--ink); }
main { max-width: 1100px; margin: 0 auto; padding: 0 1.5rem; }
.site-header { display: flex; justify-content: space-between; align-items: center; padding: 1.5rem; }
.site-header nav a { color: var(--ink); margin-left: 1rem; text-decoration: none; }
.brand { color: var(--gold); font-weight: 600; letter-spacing: .1em; }
.badge { display: inline-block; border: 1px solid var(--gold); color: var(--gold); border-radius: 999px; padding: .2rem .8rem; font-size: .75rem; text-transform: uppercase; }
.hero { padding: 4rem 0; }
.hero h1 { font-size: 3rem; margin: 1rem 0 .5rem; }
.subheadline { color: var(--gold); font-size: 2.5rem; min-height: 1.2em; margin: 0; }
.actions { margin-top: 2rem; display: flex; gap: 1rem; }
.button { background: var(--gold); color: var(--navy); border: 0; border-radius: 999px; padding: .7rem 1.4rem; text-decoration: none; font-weight: 600; cursor: pointer; }
.button.outline { background: transparent; color: var(--gold); border: 1px solid var(--gold); }
.button[disabled] { opacity: .6; cursor: wait; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; }
.card { background: rgba(255,255,255,.05); border: 1px solid rgba(255,255,255,.1); border-radius: 1.5rem; padding: 1.25rem; }
.split { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; padding: 3rem 0; }
.inputs { display: grid; grid-template-columns: repeat(3, 1fr); gap: .75rem; }
label span { display: block; font-size: .7rem; text-transform: uppercase; letter-spacing: .15em; opacity: .7; }
input, textarea { width: 100%; padding: .6rem; border-radius: .75rem; border: 1px solid rgba(255,255,255,.15); background: rgba(255,255,255,.1); color: var(--ink); margin: .3rem 0; }
.row { display: grid; grid-template-columns: 1fr 1fr; gap: .75rem; }
.eyebrow { color: var(--gold); text-transform: uppercase; letter-spacing: .3em; font-size: .7rem; }
.big { font-size: 2rem; font-weight: 600; margin: .3rem 0; }
.fine { font-size: .75rem; font-style: italic; opacity: .6; }
.steps { list-style: none; padding: 0; }
.steps li { display: flex; gap: 1rem; margin-bottom: 1rem; }
.step { color: var(--gold); font-weight: 700; }
.faq { border-bottom: 1px solid rgba(255,255,255,.1); padding: 1rem 0; }
.faq summary { cursor: pointer; font-weight: 600; }
.status.error { color: #ff8a8a; }
.status.success { color: var(--gold); }
.site-footer { max-width: 1100px; margin: 0 auto; padding: 2rem 1.5rem; border-top: 1px solid rgba(255,255,255,.1); }
.site-footer .links span { margin-right: 1rem; opacity: .7; }
.assets { border: 0; padding: 0; margin: 0 0 1rem; }
.asset { display: flex; justify-content: space-between; align-items: center; gap: 1rem; border: 1px solid rgba(255,255,255,.1); border-radius: 1rem; padding: .6rem 1rem; margin: .4rem 0; font-size: .9rem; }
.asset input { width: auto; accent-color: var(--gold); }
.review { margin-top: 1rem; }
.status a { color: var(--gold); }
@media (max-width: 800px) { .split, .inputs { grid-template-columns: 1fr; } }
`

const script = `
(function () {
  var sub = document.getElementById("subheadline");
  if (sub && !window.matchMedia("(prefers-reduced-motion: reduce)").matches) {
    var phrases = (sub.dataset.phrases || "").split("|").filter(Boolean);
    var p = 0, n = 0, deleting = false;
    var tick = function () {
      var phrase = phrases[p];
      if (!deleting) {
        n += 1;
        sub.textContent = phrase.slice(0, n);
        if (n === phrase.length) { deleting = true; return setTimeout(tick, 2000); }
        return setTimeout(tick, 70);
      }
      n -= 1;
      sub.textContent = phrase.slice(0, n);
      if (n <= 0) { deleting = false; p = (p + 1) % phrases.length; return setTimeout(tick, 70); }
      setTimeout(tick, 35);
    };
    if (phrases.length) { sub.textContent = ""; setTimeout(tick, 70); }
  }

  var calc = document.getElementById("calculator");
  if (calc) {
    var latest = 0;
    var update = function () {
      var seq = ++latest;
      var q = new URLSearchParams(new FormData(calc));
      fetch("/api/projection?" + q.toString())
        .then(function (r) { return r.json(); })
        .then(function (d) {
          if (seq !== latest) { return; }
          document.getElementById("calc-future").textContent = d.formatted.futureValue;
          document.getElementById("calc-contributions").textContent = d.formatted.totalContributions;
          document.getElementById("calc-growth").textContent = d.formatted.growth;
          document.getElementById("calc-caption").textContent =
            "Illustrative estimate assuming long-term growth over " + d.horizonYears + " years.";
        })
        .catch(function () {});
    };
    calc.addEventListener("input", update);
  }

  var form = document.getElementById("contact-form");
  if (form) {
    var status = document.getElementById("contact-status");
    var button = form.querySelector("button");
    form.addEventListener("submit", function (ev) {
      ev.preventDefault();
      if (button.disabled) { return; }
      var data = Object.fromEntries(new FormData(form));
      button.disabled = true;
      status.className = "status";
      status.textContent = "Sending...";
      fetch(form.action, {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(data)
      })
        .then(function (r) { if (!r.ok) { throw new Error(); } })
        .then(function () {
          form.reset();
          status.className = "status success";
          status.textContent = "Thanks! An advisor will reach out shortly.";
        })
        .catch(function () {
          status.className = "status error";
          status.textContent = "Something went wrong. Please try again.";
          var hosted = form.dataset.hostedForm;
          if (!hosted) { return; }
          var u = new URL(hosted);
          var fields = { first_name: data.firstName, last_name: data.lastName, email: data.email, phone: data.phone, message: data.message };
          Object.keys(fields).forEach(function (k) { u.searchParams.set(k, (fields[k] || "").trim()); });
          var link = document.createElement("a");
          link.href = u.toString();
          link.target = "_blank";
          link.rel = "noopener";
          link.textContent = "Continue with our secure form";
          status.appendChild(document.createTextNode(" "));
          status.appendChild(link);
        })
        .finally(function () { button.disabled = false; });
    });
  }
})();
`
